package repositories

import (
	"claimdesk/internal/database"
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"
	"claimdesk/internal/services"
	"context"
	"time"

	"gorm.io/gorm"
)

const CLAIM_CACHE_EXPIRY = 1 * time.Hour

type ClaimRepository interface {
	GetByID(ctx context.Context, id string) (*Claim, error)
	GetWithItems(ctx context.Context, id string) (*Claim, error)
	GetItems(ctx context.Context, claimID string) ([]ClaimItem, error)
	Create(ctx context.Context, claim *Claim) error
	Update(ctx context.Context, claim *Claim) error
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context, status ClaimStatus, limit int) ([]*Claim, error)
	CreateItem(ctx context.Context, item *ClaimItem) error
	GetItem(ctx context.Context, itemID string) (*ClaimItem, error)
	DeleteItem(ctx context.Context, itemID string) error
}

type claimRepository struct {
	db  database.DB
	log logger.Logger
}

func NewClaim(db database.DB) ClaimRepository {
	return &claimRepository{
		db:  db,
		log: logger.New("claimRepository"),
	}
}

func (r *claimRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

// inTransaction reports whether ctx carries an uncommitted transaction, in
// which case the cache must not be populated from it.
func inTransaction(ctx context.Context) bool {
	_, ok := services.GetTransaction(ctx)
	return ok
}

func (r *claimRepository) GetByID(ctx context.Context, id string) (*Claim, error) {
	log := r.log.Function("GetByID")

	var claim Claim
	if !inTransaction(ctx) {
		if found, err := r.getCacheByID(ctx, id, &claim); err == nil && found {
			return &claim, nil
		}
	}

	if err := r.getDB(ctx).First(&claim, "id = ?", id).Error; err != nil {
		return nil, log.Err("failed to get claim by id", err, "id", id)
	}

	if !inTransaction(ctx) {
		if err := r.addClaimToCache(ctx, &claim); err != nil {
			log.Warn("failed to add claim to cache", "claimID", id, "error", err)
		}
	}

	return &claim, nil
}

func (r *claimRepository) GetWithItems(ctx context.Context, id string) (*Claim, error) {
	log := r.log.Function("GetWithItems")

	var claim Claim
	err := r.getDB(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("claim_items.created_at") }).
		Preload("Patient").
		First(&claim, "id = ?", id).Error
	if err != nil {
		return nil, log.Err("failed to get claim with items", err, "id", id)
	}

	return &claim, nil
}

func (r *claimRepository) GetItems(ctx context.Context, claimID string) ([]ClaimItem, error) {
	log := r.log.Function("GetItems")

	var items []ClaimItem
	if err := r.getDB(ctx).Where("claim_id = ?", claimID).Order("created_at").Find(&items).Error; err != nil {
		return nil, log.Err("failed to get claim items", err, "claimID", claimID)
	}

	return items, nil
}

func (r *claimRepository) Create(ctx context.Context, claim *Claim) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(claim).Error; err != nil {
		return log.Err("failed to create claim", err, "claimNumber", claim.ClaimNumber)
	}

	return nil
}

func (r *claimRepository) Update(ctx context.Context, claim *Claim) error {
	log := r.log.Function("Update")

	if err := r.getDB(ctx).Save(claim).Error; err != nil {
		return log.Err("failed to update claim", err, "claimID", claim.ID)
	}

	r.dropFromCache(ctx, claim.ID)

	return nil
}

func (r *claimRepository) Delete(ctx context.Context, id string) error {
	log := r.log.Function("Delete")

	// Items are owned by the claim and removed with it.
	if err := r.getDB(ctx).Where("claim_id = ?", id).Delete(&ClaimItem{}).Error; err != nil {
		return log.Err("failed to delete claim items", err, "claimID", id)
	}

	if err := r.getDB(ctx).Delete(&Claim{}, "id = ?", id).Error; err != nil {
		return log.Err("failed to delete claim", err, "id", id)
	}

	r.dropFromCache(ctx, id)

	return nil
}

func (r *claimRepository) GetAll(ctx context.Context, status ClaimStatus, limit int) ([]*Claim, error) {
	log := r.log.Function("GetAll")

	if limit <= 0 {
		limit = 100
	}

	query := r.getDB(ctx).Preload("Patient").Order("created_at DESC").Limit(limit)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var claims []*Claim
	if err := query.Find(&claims).Error; err != nil {
		return nil, log.Err("failed to get claims", err, "status", status)
	}

	return claims, nil
}

func (r *claimRepository) CreateItem(ctx context.Context, item *ClaimItem) error {
	log := r.log.Function("CreateItem")

	if err := r.getDB(ctx).Create(item).Error; err != nil {
		return log.Err("failed to create claim item", err, "claimID", item.ClaimID)
	}

	return nil
}

func (r *claimRepository) GetItem(ctx context.Context, itemID string) (*ClaimItem, error) {
	log := r.log.Function("GetItem")

	var item ClaimItem
	if err := r.getDB(ctx).First(&item, "id = ?", itemID).Error; err != nil {
		return nil, log.Err("failed to get claim item", err, "itemID", itemID)
	}

	return &item, nil
}

func (r *claimRepository) DeleteItem(ctx context.Context, itemID string) error {
	log := r.log.Function("DeleteItem")

	if err := r.getDB(ctx).Delete(&ClaimItem{}, "id = ?", itemID).Error; err != nil {
		return log.Err("failed to delete claim item", err, "itemID", itemID)
	}

	return nil
}

func (r *claimRepository) getCacheByID(ctx context.Context, claimID string, claim *Claim) (bool, error) {
	found, err := database.NewCacheBuilder(r.db.Cache.Claim, claimID).WithContext(ctx).Get(claim)
	if err != nil {
		return false, r.log.Function("getCacheByID").
			Err("failed to get claim from cache", err, "claimID", claimID)
	}

	return found, nil
}

func (r *claimRepository) addClaimToCache(ctx context.Context, claim *Claim) error {
	if err := database.NewCacheBuilder(r.db.Cache.Claim, claim.ID).
		WithStruct(claim).
		WithTTL(CLAIM_CACHE_EXPIRY).
		WithContext(ctx).
		Set(); err != nil {
		return r.log.Function("addClaimToCache").
			Err("failed to add claim to cache", err, "claimID", claim.ID)
	}
	return nil
}

func (r *claimRepository) dropFromCache(ctx context.Context, claimID string) {
	if err := database.NewCacheBuilder(r.db.Cache.Claim, claimID).WithContext(ctx).Delete(); err != nil {
		r.log.Function("dropFromCache").Warn("failed to remove claim from cache", "claimID", claimID, "error", err)
	}
}
