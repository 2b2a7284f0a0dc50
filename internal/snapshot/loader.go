package snapshot

import (
	"context"
	"sync"

	"github.com/iliyamo/property-management/internal/model"
)

// The loader fetches the four collections for one manager. Fetches run
// concurrently and are joined before normalization; if any of them fails
// the whole load fails, so a caller's previous snapshot is never
// partially overwritten.

type PropertySource interface {
	ListByManager(ctx context.Context, managerID uint64) ([]*model.Property, error)
}

type TenantSource interface {
	ListByManager(ctx context.Context, managerID uint64) ([]*model.Tenant, error)
}

type PaymentSource interface {
	ListByManager(ctx context.Context, managerID uint64) ([]*model.Payment, error)
}

type MaintenanceSource interface {
	ListByManager(ctx context.Context, managerID uint64) ([]*model.MaintenanceRequest, error)
}

// Loader bundles the four repositories a snapshot is built from.
type Loader struct {
	Properties  PropertySource
	Tenants     TenantSource
	Payments    PaymentSource
	Maintenance MaintenanceSource
}

// Load fetches all four collections for managerID concurrently, then
// builds the snapshot. The first fetch error wins; on error (including
// context cancellation) no snapshot is returned and the fetched partial
// results are discarded.
func (l *Loader) Load(ctx context.Context, managerID uint64) (*Snapshot, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		first error

		properties  []*model.Property
		tenants     []*model.Tenant
		payments    []*model.Payment
		maintenance []*model.MaintenanceRequest
	)

	fail := func(err error) {
		mu.Lock()
		if first == nil {
			first = err
			cancel() // abandon the remaining fetches
		}
		mu.Unlock()
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		rows, err := l.Properties.ListByManager(ctx, managerID)
		if err != nil {
			fail(err)
			return
		}
		properties = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := l.Tenants.ListByManager(ctx, managerID)
		if err != nil {
			fail(err)
			return
		}
		tenants = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := l.Payments.ListByManager(ctx, managerID)
		if err != nil {
			fail(err)
			return
		}
		payments = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := l.Maintenance.ListByManager(ctx, managerID)
		if err != nil {
			fail(err)
			return
		}
		maintenance = rows
	}()
	wg.Wait()

	if first != nil {
		return nil, first
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Build(properties, tenants, payments, maintenance), nil
}
