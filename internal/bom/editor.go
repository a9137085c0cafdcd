package bom

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	pkgerrors "github.com/autoflexhq/inventory-console/pkg/errors"
	"github.com/autoflexhq/inventory-console/pkg/inventory"
)

// State is the editor lifecycle phase exposed to the presentation layer.
type State string

const (
	StateIdle       State = "idle"
	StateLoading    State = "loading"
	StateReady      State = "ready"
	StateLoadFailed State = "load_failed"
	StateBusy       State = "busy"
)

var (
	// ErrOperationInFlight rejects a mutating call while another mutation
	// or load has not finished. The editor guards this itself instead of
	// trusting the presentation layer to disable controls.
	ErrOperationInFlight = pkgerrors.New(pkgerrors.CodeBusy, "another operation is in flight")

	// ErrEditorClosed rejects operations on a closed editor session.
	ErrEditorClosed = pkgerrors.New(pkgerrors.CodeConflict, "editor session closed")
)

// Repository is the slice of the inventory API the editor consumes.
type Repository interface {
	ListProductMaterials(ctx context.Context, productID int64) ([]inventory.ProductMaterial, error)
	AddProductMaterial(ctx context.Context, productID int64, payload inventory.ProductMaterialCreate) (*inventory.ProductMaterial, error)
	UpdateProductMaterial(ctx context.Context, productID, productMaterialID int64, payload inventory.ProductMaterialUpdate) (*inventory.ProductMaterial, error)
	DeleteProductMaterial(ctx context.Context, productID, productMaterialID int64) error
	ListRawMaterials(ctx context.Context) ([]inventory.RawMaterial, error)
}

// Editor owns the in-memory BOM state for one product while its dialog is
// open: the authoritative association list, the raw material catalog, and
// the per-row drafts. Every mutation is written remotely and followed by a
// full reload; the editor never updates its list optimistically.
type Editor struct {
	repo      Repository
	productID int64

	mu      sync.Mutex
	state   State
	closed  bool
	loaded  bool
	items   []inventory.ProductMaterial
	catalog []inventory.RawMaterial
	drafts  *DraftStore

	pendingRawMaterialID int64
	pendingQuantity      decimal.Decimal

	errorMsg string

	loadCancel context.CancelFunc
	loadGen    uint64
}

// NewEditor builds an idle editor for the given product.
func NewEditor(repo Repository, productID int64) *Editor {
	return &Editor{
		repo:      repo,
		productID: productID,
		state:     StateIdle,
		drafts:    NewDraftStore(),
	}
}

// ProductID returns the product this editor is scoped to.
func (e *Editor) ProductID() int64 {
	return e.productID
}

// Open loads the association list and the raw material catalog
// concurrently and replaces the editor state with the result. A second
// Open while one is loading cancels and supersedes the first. On failure
// before any data was loaded the editor stays empty with an error message.
func (e *Editor) Open(ctx context.Context) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrEditorClosed
	}
	if e.state == StateBusy {
		e.mu.Unlock()
		return ErrOperationInFlight
	}
	if e.loadCancel != nil {
		e.loadCancel()
	}
	loadCtx, cancel := context.WithCancel(ctx)
	e.loadCancel = cancel
	e.loadGen++
	gen := e.loadGen
	e.state = StateLoading
	e.errorMsg = ""
	e.mu.Unlock()

	items, catalog, err := e.fetch(loadCtx)
	cancel()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || gen != e.loadGen {
		// Superseded by a newer Open or by Close; drop this result.
		return nil
	}
	e.loadCancel = nil
	if err != nil {
		e.errorMsg = inventory.ErrorMessage(err)
		if e.loaded {
			e.state = StateReady
		} else {
			e.state = StateLoadFailed
			e.items = nil
			e.catalog = nil
			e.drafts.Rebuild(nil)
		}
		return err
	}
	e.commitReload(items, catalog)
	return nil
}

// Refresh re-synchronizes from the source of truth. Callers may invoke it
// independently of any mutation, e.g. on window focus.
func (e *Editor) Refresh(ctx context.Context) error {
	return e.Open(ctx)
}

// AddAssociation links a raw material to the product with the given
// required quantity. Calls with a non-positive quantity or a raw material
// outside the current availability set are silent no-ops. On remote
// failure the pending form values are preserved for retry.
func (e *Editor) AddAssociation(ctx context.Context, rawMaterialID int64, quantity decimal.Decimal) error {
	e.mu.Lock()
	if err := e.canMutateLocked(); err != nil {
		e.mu.Unlock()
		return err
	}
	if !quantity.IsPositive() || !e.availableLocked(rawMaterialID) {
		e.mu.Unlock()
		return nil
	}
	e.pendingRawMaterialID = rawMaterialID
	e.pendingQuantity = quantity
	e.state = StateBusy
	e.errorMsg = ""
	e.mu.Unlock()

	_, err := e.repo.AddProductMaterial(ctx, e.productID, inventory.ProductMaterialCreate{
		RawMaterialID:    rawMaterialID,
		RequiredQuantity: quantity,
	})
	if err != nil {
		return e.failMutation(err)
	}

	e.mu.Lock()
	if !e.closed {
		e.pendingRawMaterialID = 0
		e.pendingQuantity = decimal.Zero
	}
	e.mu.Unlock()

	return e.reloadAfterMutation(ctx)
}

// UpdateQuantity persists a new required quantity for one row. Calls with
// a non-positive or unchanged value are silent no-ops. On remote failure
// the draft value is left untouched so the user may retry.
func (e *Editor) UpdateQuantity(ctx context.Context, associationID int64, quantity decimal.Decimal) error {
	e.mu.Lock()
	if err := e.canMutateLocked(); err != nil {
		e.mu.Unlock()
		return err
	}
	pm, ok := e.itemLocked(associationID)
	if !ok || !isDirty(quantity, pm.RequiredQuantity) {
		e.mu.Unlock()
		return nil
	}
	e.drafts.Set(associationID, quantity)
	e.state = StateBusy
	e.errorMsg = ""
	e.mu.Unlock()

	_, err := e.repo.UpdateProductMaterial(ctx, e.productID, associationID, inventory.ProductMaterialUpdate{
		RequiredQuantity: quantity,
	})
	if err != nil {
		return e.failMutation(err)
	}
	return e.reloadAfterMutation(ctx)
}

// RemoveAssociation deletes one row remotely and reloads. On failure the
// row remains and the error is surfaced.
func (e *Editor) RemoveAssociation(ctx context.Context, associationID int64) error {
	e.mu.Lock()
	if err := e.canMutateLocked(); err != nil {
		e.mu.Unlock()
		return err
	}
	e.state = StateBusy
	e.errorMsg = ""
	e.mu.Unlock()

	if err := e.repo.DeleteProductMaterial(ctx, e.productID, associationID); err != nil {
		return e.failMutation(err)
	}
	return e.reloadAfterMutation(ctx)
}

// EditDraft records an edited quantity for one row. It only mutates the
// draft store; nothing is persisted until UpdateQuantity.
func (e *Editor) EditDraft(associationID int64, value decimal.Decimal) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	if _, ok := e.itemLocked(associationID); ok {
		e.drafts.Set(associationID, value)
	}
}

// IsDirty reports whether the row's draft is a valid positive quantity
// differing from the persisted value. It gates the per-row save action.
func (e *Editor) IsDirty(associationID int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	pm, ok := e.itemLocked(associationID)
	if !ok {
		return false
	}
	draft, ok := e.drafts.Value(associationID)
	if !ok {
		return false
	}
	return isDirty(draft, pm.RequiredQuantity)
}

// Close discards all in-memory state unconditionally. Drafts are never
// persisted.
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	if e.loadCancel != nil {
		e.loadCancel()
		e.loadCancel = nil
	}
	e.loadGen++
	e.items = nil
	e.catalog = nil
	e.drafts = NewDraftStore()
	e.pendingRawMaterialID = 0
	e.pendingQuantity = decimal.Zero
	e.errorMsg = ""
	e.loaded = false
	e.state = StateIdle
}

func (e *Editor) fetch(ctx context.Context) ([]inventory.ProductMaterial, []inventory.RawMaterial, error) {
	var (
		items   []inventory.ProductMaterial
		catalog []inventory.RawMaterial
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = e.repo.ListProductMaterials(gctx, e.productID)
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = e.repo.ListRawMaterials(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return items, catalog, nil
}

// reloadAfterMutation re-synchronizes after a successful remote write. A
// failed reload keeps the prior list and only annotates it with an error;
// already-loaded state is never lost to a failed mutation.
func (e *Editor) reloadAfterMutation(ctx context.Context) error {
	items, catalog, err := e.fetch(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.state = StateReady
	if err != nil {
		e.errorMsg = inventory.ErrorMessage(err)
		return err
	}
	e.commitReload(items, catalog)
	return nil
}

func (e *Editor) commitReload(items []inventory.ProductMaterial, catalog []inventory.RawMaterial) {
	e.items = items
	e.catalog = catalog
	e.drafts.Rebuild(items)
	e.loaded = true
	e.errorMsg = ""
	e.state = StateReady
}

func (e *Editor) failMutation(err error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return err
	}
	e.state = StateReady
	e.errorMsg = inventory.ErrorMessage(err)
	return err
}

func (e *Editor) canMutateLocked() error {
	if e.closed {
		return ErrEditorClosed
	}
	if e.state == StateBusy || e.state == StateLoading {
		return ErrOperationInFlight
	}
	return nil
}

func (e *Editor) availableLocked(rawMaterialID int64) bool {
	for _, rm := range AvailableRawMaterials(e.items, e.catalog) {
		if rm.ID == rawMaterialID {
			return true
		}
	}
	return false
}

func (e *Editor) itemLocked(associationID int64) (inventory.ProductMaterial, bool) {
	for _, pm := range e.items {
		if pm.ID == associationID {
			return pm, true
		}
	}
	return inventory.ProductMaterial{}, false
}
