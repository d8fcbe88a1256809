package impl

import (
	"context"
	"log/slog"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// toolService implements the ToolUsecase interface.
type toolService struct {
	txManager repository.TransactionManager
	toolRepo  repository.ToolRepository
	logger    *slog.Logger
}

// ToolServiceParams holds dependencies for toolService, injected by Fx.
type ToolServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ToolRepo  repository.ToolRepository
	Logger    *slog.Logger
}

// NewToolService is the constructor for toolService.
func NewToolService(params ToolServiceParams) usecase.ToolUsecase {
	return &toolService{
		txManager: params.TxManager,
		toolRepo:  params.ToolRepo,
		logger:    params.Logger,
	}
}

func (srv *toolService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves every tool. An empty store yields an empty slice.
func (srv *toolService) List(ctx context.Context) ([]*entity.Tool, error) {
	tools, err := srv.toolRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tools")
	}

	return tools, nil
}

// Create persists a new tool. When SkillID is set, the referenced skill
// must exist.
func (srv *toolService) Create(ctx context.Context, input usecase.CreateToolInput) (*entity.Tool, error) {
	tool := &entity.Tool{
		NameFR:        input.NameFR,
		NameEN:        input.NameEN,
		DescriptionFR: input.DescriptionFR,
		DescriptionEN: input.DescriptionEN,
		SkillID:       input.SkillID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ToolRepo().Create(ctx, tool)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Tool created", slog.Int64("toolID", tool.ID))

	return tool, nil
}

// Update applies the non-nil fields of the input to the stored tool.
func (srv *toolService) Update(ctx context.Context, id int64, input usecase.UpdateToolInput) (*entity.Tool, error) {
	var updated *entity.Tool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		toolRepo := repoFactory.ToolRepo()

		tool, err := toolRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrToolNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("tool not found")
			}

			return errors.Wrap(err, "failed to load tool for update")
		}

		if input.NameFR != nil {
			tool.NameFR = *input.NameFR
		}
		if input.NameEN != nil {
			tool.NameEN = *input.NameEN
		}
		if input.DescriptionFR != nil {
			tool.DescriptionFR = input.DescriptionFR
		}
		if input.DescriptionEN != nil {
			tool.DescriptionEN = input.DescriptionEN
		}
		if input.SkillID != nil {
			tool.SkillID = input.SkillID
		}

		if err := toolRepo.Save(ctx, tool); err != nil {
			return err
		}

		updated = tool

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Tool updated", slog.Int64("toolID", id))

	return updated, nil
}

// Delete removes the tool with the given ID. The owning skill is left
// untouched.
func (srv *toolService) Delete(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ToolRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrToolNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("tool not found")
			}

			return err
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Tool deleted", slog.Int64("toolID", id))

	return nil
}
