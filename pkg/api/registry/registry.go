package registry

import (
	"encoding/json"
	"time"

	"github.com/google/go-github/v60/github"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/apperrors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/db/gormdb"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/models"
)

// ErrOrphanRepository means the repository can't be attributed to a tenant:
// its installation is unknown or isn't linked to an organization.
var ErrOrphanRepository = errors.New("repository has no owning organization")

type Registry interface {
	UpsertInstallation(gi *github.Installation) (*models.Installation, error)
	DeleteInstallation(providerInstallationID int64) error

	UpsertRepository(gr *github.Repository, providerInstallationID int64) (*models.Repository, error)
	DeleteRepository(providerID int64) error

	GetRepository(providerID int64) (*models.Repository, error)
}

type BasicRegistry struct {
	db  *gorm.DB
	log logutil.Log
}

func NewBasicRegistry(db *gorm.DB, log logutil.Log) *BasicRegistry {
	return &BasicRegistry{
		db:  db,
		log: log,
	}
}

func (r BasicRegistry) UpsertInstallation(gi *github.Installation) (*models.Installation, error) {
	if gi.GetID() == 0 {
		return nil, errors.Wrap(apperrors.ErrBadRequest, "no installation id in payload")
	}

	var inst models.Installation
	err := gormdb.InTx(r.db, func(tx *gorm.DB) error {
		err := tx.Where("provider_installation_id = ?", gi.GetID()).First(&inst).Error
		if err != nil && !gorm.IsRecordNotFoundError(err) {
			return errors.Wrapf(err, "failed to fetch installation %d", gi.GetID())
		}

		if err = applyInstallation(&inst, gi); err != nil {
			return err
		}

		if inst.OrganizationID == nil {
			if inst.OrganizationID, err = r.findOrganizationID(tx, inst.AccountLogin); err != nil {
				return err
			}
		}

		if err = tx.Save(&inst).Error; err != nil {
			return errors.Wrapf(err, "failed to save installation %d", gi.GetID())
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	r.log.Infof("Upserted installation %d of %s (organization linked: %t)",
		inst.ProviderInstallationID, inst.AccountLogin, inst.OrganizationID != nil)
	return &inst, nil
}

func applyInstallation(inst *models.Installation, gi *github.Installation) error {
	inst.ProviderInstallationID = gi.GetID()
	inst.AccountID = gi.GetAccount().GetID()
	inst.AccountLogin = gi.GetAccount().GetLogin()
	inst.AccountType = gi.GetAccount().GetType()
	inst.Events = models.StringList(gi.Events)

	if gi.Permissions != nil {
		data, err := json.Marshal(gi.Permissions)
		if err != nil {
			return errors.Wrap(err, "failed to marshal installation permissions")
		}
		perms := models.StringMap{}
		if err = json.Unmarshal(data, &perms); err != nil {
			return errors.Wrap(err, "failed to unmarshal installation permissions")
		}
		inst.Permissions = perms
	}

	if gi.SuspendedAt != nil {
		t := gi.SuspendedAt.Time
		inst.SuspendedAt = &t
	} else {
		inst.SuspendedAt = nil
	}

	return nil
}

func (r BasicRegistry) findOrganizationID(tx *gorm.DB, accountLogin string) (*uint, error) {
	if accountLogin == "" {
		return nil, nil
	}

	var org models.Organization
	err := tx.Where("LOWER(github_login) = LOWER(?)", accountLogin).First(&org).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to fetch organization for %s", accountLogin)
	}

	return &org.ID, nil
}

// DeleteInstallation removes the installation with its repositories.
// Dependents go first, in the same transaction.
func (r BasicRegistry) DeleteInstallation(providerInstallationID int64) error {
	var deletedRepos int64
	err := gormdb.InTx(r.db, func(tx *gorm.DB) error {
		res := tx.Unscoped().Where("provider_installation_id = ?", providerInstallationID).
			Delete(&models.Repository{})
		if res.Error != nil {
			return errors.Wrapf(res.Error, "failed to delete repositories of installation %d", providerInstallationID)
		}
		deletedRepos = res.RowsAffected

		err := tx.Unscoped().Where("provider_installation_id = ?", providerInstallationID).
			Delete(&models.Installation{}).Error
		if err != nil {
			return errors.Wrapf(err, "failed to delete installation %d", providerInstallationID)
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.log.Infof("Deleted installation %d and its %d repositories", providerInstallationID, deletedRepos)
	return nil
}

// UpsertRepository fails closed with ErrOrphanRepository when the owning
// organization can't be resolved through the installation.
func (r BasicRegistry) UpsertRepository(gr *github.Repository, providerInstallationID int64) (*models.Repository, error) {
	if gr.GetID() == 0 {
		return nil, errors.Wrap(apperrors.ErrBadRequest, "no repository id in payload")
	}

	var repo models.Repository
	err := gormdb.InTx(r.db, func(tx *gorm.DB) error {
		var inst models.Installation
		err := tx.Where("provider_installation_id = ?", providerInstallationID).First(&inst).Error
		if err != nil {
			if gorm.IsRecordNotFoundError(err) {
				return ErrOrphanRepository
			}
			return errors.Wrapf(err, "failed to fetch installation %d", providerInstallationID)
		}
		if inst.OrganizationID == nil {
			return ErrOrphanRepository
		}

		err = tx.Where("provider_id = ?", gr.GetID()).First(&repo).Error
		if err != nil && !gorm.IsRecordNotFoundError(err) {
			return errors.Wrapf(err, "failed to fetch repository %d", gr.GetID())
		}

		applyRepository(&repo, gr)
		repo.OrganizationID = *inst.OrganizationID
		repo.ProviderInstallationID = &inst.ProviderInstallationID

		if err = tx.Save(&repo).Error; err != nil {
			return errors.Wrapf(err, "failed to save repository %s", gr.GetFullName())
		}
		return nil
	})
	if err != nil {
		if err == ErrOrphanRepository {
			r.log.Infof("Skipping repository %s of installation %d: no owning organization",
				gr.GetFullName(), providerInstallationID)
		}
		return nil, err
	}

	return &repo, nil
}

// applyRepository copies fields present in the payload: installation
// events carry only a few of them.
func applyRepository(repo *models.Repository, gr *github.Repository) {
	repo.ProviderID = gr.GetID()
	repo.IsPrivate = gr.GetPrivate()

	setIfPresent := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setIfPresent(&repo.Name, gr.Name)
	setIfPresent(&repo.FullName, gr.FullName)
	setIfPresent(&repo.Language, gr.Language)
	setIfPresent(&repo.DefaultBranch, gr.DefaultBranch)
	setIfPresent(&repo.HTMLURL, gr.HTMLURL)
	setIfPresent(&repo.CloneURL, gr.CloneURL)
	setIfPresent(&repo.SSHURL, gr.SSHURL)

	if gr.StargazersCount != nil {
		repo.StargazersCount = *gr.StargazersCount
	}
	if gr.ForksCount != nil {
		repo.ForksCount = *gr.ForksCount
	}
	if gr.UpdatedAt != nil {
		t := gr.UpdatedAt.Time.UTC().Truncate(time.Second)
		repo.ProviderUpdatedAt = &t
	}
}

func (r BasicRegistry) DeleteRepository(providerID int64) error {
	res := r.db.Unscoped().Where("provider_id = ?", providerID).Delete(&models.Repository{})
	if res.Error != nil {
		return errors.Wrapf(res.Error, "failed to delete repository %d", providerID)
	}

	r.log.Infof("Deleted %d repository rows for provider id %d", res.RowsAffected, providerID)
	return nil
}

func (r BasicRegistry) GetRepository(providerID int64) (*models.Repository, error) {
	var repo models.Repository
	if err := r.db.Where("provider_id = ?", providerID).First(&repo).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, errors.Wrapf(apperrors.ErrNotFound, "no repository with provider id %d", providerID)
		}
		return nil, errors.Wrapf(err, "failed to fetch repository %d", providerID)
	}

	return &repo, nil
}
