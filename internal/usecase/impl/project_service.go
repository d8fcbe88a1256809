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

// projectService implements the ProjectUsecase interface.
type projectService struct {
	txManager   repository.TransactionManager
	projectRepo repository.ProjectRepository
	logger      *slog.Logger
}

// ProjectServiceParams holds dependencies for projectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProjectRepo repository.ProjectRepository
	Logger      *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		txManager:   params.TxManager,
		projectRepo: params.ProjectRepo,
		logger:      params.Logger,
	}
}

func (srv *projectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves every project. An empty store yields an empty slice.
func (srv *projectService) List(ctx context.Context) ([]*entity.Project, error) {
	projects, err := srv.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return projects, nil
}

// Create persists a new project. Status defaults to pending.
func (srv *projectService) Create(ctx context.Context, input usecase.CreateProjectInput) (*entity.Project, error) {
	status := entity.ProjectStatusPending
	if input.Status != nil {
		status = *input.Status
	}

	project := &entity.Project{
		NameFR:        input.NameFR,
		NameEN:        input.NameEN,
		DescriptionFR: input.DescriptionFR,
		DescriptionEN: input.DescriptionEN,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Status:        status,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProjectRepo().Create(ctx, project)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Project created", slog.Int64("projectID", project.ID))

	return project, nil
}

// Update applies the non-nil fields of the input to the stored project.
func (srv *projectService) Update(ctx context.Context, id int64, input usecase.UpdateProjectInput) (*entity.Project, error) {
	var updated *entity.Project
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		projectRepo := repoFactory.ProjectRepo()

		project, err := projectRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProjectNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("project not found")
			}

			return errors.Wrap(err, "failed to load project for update")
		}

		if input.NameFR != nil {
			project.NameFR = *input.NameFR
		}
		if input.NameEN != nil {
			project.NameEN = *input.NameEN
		}
		if input.DescriptionFR != nil {
			project.DescriptionFR = input.DescriptionFR
		}
		if input.DescriptionEN != nil {
			project.DescriptionEN = input.DescriptionEN
		}
		if input.StartDate != nil {
			project.StartDate = input.StartDate
		}
		if input.EndDate != nil {
			project.EndDate = input.EndDate
		}
		if input.Status != nil {
			project.Status = *input.Status
		}

		if err := projectRepo.Save(ctx, project); err != nil {
			return err
		}

		updated = project

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Project updated", slog.Int64("projectID", id))

	return updated, nil
}

// Delete removes the project with the given ID.
func (srv *projectService) Delete(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProjectRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrProjectNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("project not found")
			}

			return err
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Project deleted", slog.Int64("projectID", id))

	return nil
}
