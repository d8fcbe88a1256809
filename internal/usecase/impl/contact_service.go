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

// contactService implements the ContactUsecase interface.
type contactService struct {
	txManager   repository.TransactionManager
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for contactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ContactRepo repository.ContactRepository
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		txManager:   params.TxManager,
		contactRepo: params.ContactRepo,
		logger:      params.Logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get retrieves the singleton contact-links record.
func (srv *contactService) Get(ctx context.Context) (*entity.Contact, error) {
	contact, err := srv.contactRepo.First(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("contact not found")
		}

		return nil, errors.Wrap(err, "failed to get contact")
	}

	return contact, nil
}

// Create persists the contact-links record.
func (srv *contactService) Create(ctx context.Context, input usecase.CreateContactInput) (*entity.Contact, error) {
	contact := &entity.Contact{
		Instagram: input.Instagram,
		LinkedIn:  input.LinkedIn,
		X:         input.X,
		GitHub:    input.GitHub,
		Resume:    input.Resume,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ContactRepo().Create(ctx, contact)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Contact created", slog.Int64("contactID", contact.ID))

	return contact, nil
}

// Update applies the non-nil fields of the input to the stored record.
func (srv *contactService) Update(ctx context.Context, id int64, input usecase.UpdateContactInput) (*entity.Contact, error) {
	var updated *entity.Contact
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contactRepo := repoFactory.ContactRepo()

		contact, err := contactRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrContactNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("contact not found")
			}

			return errors.Wrap(err, "failed to load contact for update")
		}

		if input.Instagram != nil {
			contact.Instagram = input.Instagram
		}
		if input.LinkedIn != nil {
			contact.LinkedIn = input.LinkedIn
		}
		if input.X != nil {
			contact.X = input.X
		}
		if input.GitHub != nil {
			contact.GitHub = input.GitHub
		}
		if input.Resume != nil {
			contact.Resume = input.Resume
		}

		if err := contactRepo.Save(ctx, contact); err != nil {
			return err
		}

		updated = contact

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Contact updated", slog.Int64("contactID", id))

	return updated, nil
}

// Delete removes the contact-links record with the given ID.
func (srv *contactService) Delete(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ContactRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrContactNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("contact not found")
			}

			return err
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Contact deleted", slog.Int64("contactID", id))

	return nil
}
