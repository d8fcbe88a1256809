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

// skillService implements the SkillUsecase interface.
type skillService struct {
	txManager repository.TransactionManager
	skillRepo repository.SkillRepository
	logger    *slog.Logger
}

// SkillServiceParams holds dependencies for skillService, injected by Fx.
type SkillServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	SkillRepo repository.SkillRepository
	Logger    *slog.Logger
}

// NewSkillService is the constructor for skillService.
func NewSkillService(params SkillServiceParams) usecase.SkillUsecase {
	return &skillService{
		txManager: params.TxManager,
		skillRepo: params.SkillRepo,
		logger:    params.Logger,
	}
}

func (srv *skillService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves every skill together with its tools.
func (srv *skillService) List(ctx context.Context) ([]*entity.Skill, error) {
	skills, err := srv.skillRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list skills")
	}

	return skills, nil
}

// Create persists a new skill.
func (srv *skillService) Create(ctx context.Context, input usecase.CreateSkillInput) (*entity.Skill, error) {
	skill := &entity.Skill{
		NameFR:        input.NameFR,
		NameEN:        input.NameEN,
		DescriptionFR: input.DescriptionFR,
		DescriptionEN: input.DescriptionEN,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.SkillRepo().Create(ctx, skill)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Skill created", slog.Int64("skillID", skill.ID))

	return skill, nil
}

// Update applies the non-nil fields of the input to the stored skill.
func (srv *skillService) Update(ctx context.Context, id int64, input usecase.UpdateSkillInput) (*entity.Skill, error) {
	var updated *entity.Skill
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		skillRepo := repoFactory.SkillRepo()

		skill, err := skillRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrSkillNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("skill not found")
			}

			return errors.Wrap(err, "failed to load skill for update")
		}

		if input.NameFR != nil {
			skill.NameFR = *input.NameFR
		}
		if input.NameEN != nil {
			skill.NameEN = *input.NameEN
		}
		if input.DescriptionFR != nil {
			skill.DescriptionFR = input.DescriptionFR
		}
		if input.DescriptionEN != nil {
			skill.DescriptionEN = input.DescriptionEN
		}

		if err := skillRepo.Save(ctx, skill); err != nil {
			return err
		}

		updated = skill

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Skill updated", slog.Int64("skillID", id))

	return updated, nil
}

// Delete removes the skill and, through the repository, the tools it
// owns. Both removals happen in one transaction.
func (srv *skillService) Delete(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SkillRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrSkillNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("skill not found")
			}

			return err
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Skill deleted with its tools", slog.Int64("skillID", id))

	return nil
}
