package pet

import (
	"context"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/pet-shelter/internal/audit"
	domain "github.com/BruksfildServices01/pet-shelter/internal/domain/pet"
	"github.com/BruksfildServices01/pet-shelter/internal/models"
	"github.com/BruksfildServices01/pet-shelter/internal/storage"
)

// ======================================================
// INPUT
// ======================================================

type SavePetInput struct {
	AdminID uint
	ID      uint // zero on create

	domain.Input

	// Photo, when set, replaces ImageURL.
	Photo io.Reader
}

// ======================================================
// USE CASE
// ======================================================

type ManagePets struct {
	repo   domain.Repository
	store  storage.Storage
	images storage.ImageProcessor
	audit  *audit.Dispatcher
	log    *zap.Logger
}

func NewManagePets(
	repo domain.Repository,
	store storage.Storage,
	images storage.ImageProcessor,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *ManagePets {
	if log == nil {
		log = zap.NewNop()
	}
	return &ManagePets{
		repo:   repo,
		store:  store,
		images: images,
		audit:  audit,
		log:    log,
	}
}

func (uc *ManagePets) Create(ctx context.Context, in SavePetInput) (*models.Pet, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	image, uploaded, err := uc.resolveImage(ctx, in)
	if err != nil {
		return nil, err
	}

	p := &models.Pet{
		Name:        strings.TrimSpace(in.Name),
		Type:        in.Type,
		Breed:       strings.TrimSpace(in.Breed),
		Age:         in.Age,
		Image:       image,
		Description: strings.TrimSpace(in.Description),
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		uc.discard(ctx, uploaded)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &in.AdminID,
		ActorRole: audit.RoleAdmin,
		Action:    "pet_created",
		Entity:    "pet",
		EntityID:  &p.ID,
		Metadata:  map[string]any{"name": p.Name, "type": p.Type},
	})
	return p, nil
}

func (uc *ManagePets) Update(ctx context.Context, in SavePetInput) (*models.Pet, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p, err := uc.repo.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	previous := p.ImageURL()

	image, uploaded, err := uc.resolveImage(ctx, in)
	if err != nil {
		return nil, err
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Type = in.Type
	p.Breed = strings.TrimSpace(in.Breed)
	p.Age = in.Age
	p.Image = image
	p.Description = strings.TrimSpace(in.Description)

	if err := uc.repo.Update(ctx, p); err != nil {
		uc.discard(ctx, uploaded)
		return nil, err
	}

	if previous != "" && previous != p.ImageURL() {
		uc.discard(ctx, previous)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &in.AdminID,
		ActorRole: audit.RoleAdmin,
		Action:    "pet_updated",
		Entity:    "pet",
		EntityID:  &p.ID,
	})
	return p, nil
}

func (uc *ManagePets) Delete(ctx context.Context, adminID, id uint) error {
	p, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	uc.discard(ctx, p.ImageURL())

	uc.audit.Dispatch(audit.Event{
		ActorID:   &adminID,
		ActorRole: audit.RoleAdmin,
		Action:    "pet_deleted",
		Entity:    "pet",
		EntityID:  &id,
		Metadata:  map[string]any{"name": p.Name},
	})
	return nil
}

// resolveImage stores an uploaded photo, or falls back to the URL field.
// uploaded is the stored URL to roll back if the write that follows fails.
func (uc *ManagePets) resolveImage(ctx context.Context, in SavePetInput) (image *string, uploaded string, err error) {
	if in.Photo == nil {
		url := strings.TrimSpace(in.ImageURL)
		if url == "" {
			return nil, "", nil
		}
		return &url, "", nil
	}

	data, err := uc.images.Process(in.Photo)
	if err != nil {
		return nil, "", err
	}

	url, err := uc.store.Put(ctx, storage.NewKey(), data, storage.ContentTypeWebP)
	if err != nil {
		return nil, "", err
	}
	return &url, url, nil
}

// discard deletes a stored image; failures are logged, not returned.
func (uc *ManagePets) discard(ctx context.Context, url string) {
	if url == "" || !uc.store.Owns(url) {
		return
	}
	if err := uc.store.Delete(ctx, url); err != nil {
		uc.log.Warn("failed to delete pet image", zap.String("url", url), zap.Error(err))
	}
}
