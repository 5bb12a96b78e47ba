package media

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type AssetKind string

const (
	AssetProfileImage AssetKind = "image"
	AssetResume       AssetKind = "resume"
)

// UploadProfileAssetUseCase stores a profile image or resume in media storage
// and records its URL through the regular profile update path.
type UploadProfileAssetUseCase struct {
	profileUC *profileUC.ProfileUseCase
	uploader  service.Uploader
	logger    logger.Logger
}

func NewUploadProfileAssetUseCase(puc *profileUC.ProfileUseCase, u service.Uploader, log logger.Logger) *UploadProfileAssetUseCase {
	return &UploadProfileAssetUseCase{profileUC: puc, uploader: u, logger: log}
}

type UploadProfileAssetInput struct {
	ProfileID uuid.UUID
	Kind      AssetKind
	File      io.Reader
}

type UploadProfileAssetOutput struct {
	URL     string
	Profile *profile.Profile
}

func (uc *UploadProfileAssetUseCase) Execute(ctx context.Context, input UploadProfileAssetInput) (*UploadProfileAssetOutput, error) {
	if input.Kind != AssetProfileImage && input.Kind != AssetResume {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown asset kind '%s'", input.Kind), nil)
	}
	if input.File == nil {
		return nil, apperror.NewInvalidInput("file is required", nil)
	}

	current, err := uc.profileUC.GetProfileByID(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	// a fresh id per upload keeps the currently linked asset intact until the
	// profile points at the new one
	folder := fmt.Sprintf("profiles/%s", input.ProfileID)
	publicID := fmt.Sprintf("%s-%s", input.Kind, uuid.New())

	url, err := uc.uploader.Upload(ctx, input.File, folder, publicID)
	if err != nil {
		return nil, apperror.NewInternal("failed to upload "+string(input.Kind), err)
	}

	upd := profile.Update{
		FullName:     current.FullName,
		Phone:        current.Phone,
		Bio:          current.Bio,
		ProfileImage: current.ProfileImage,
		ResumeURL:    current.ResumeURL,
	}
	if input.Kind == AssetProfileImage {
		upd.ProfileImage = &url
	} else {
		upd.ResumeURL = &url
	}

	updated, err := uc.profileUC.UpdateProfile(ctx, input.ProfileID, upd)
	if err != nil {
		orphan := folder + "/" + publicID
		go func() {
			delCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if delErr := uc.uploader.Delete(delCtx, orphan); delErr != nil {
				uc.logger.Warn("Failed to remove orphaned asset", zap.String("public_id", orphan), zap.Error(delErr))
			}
		}()
		return nil, err
	}

	uc.logger.Info("Profile asset uploaded", zap.String("profile_id", input.ProfileID.String()), zap.String("kind", string(input.Kind)))
	return &UploadProfileAssetOutput{URL: url, Profile: updated}, nil
}
