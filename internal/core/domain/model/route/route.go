package route

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Domain errors for route operations.
var (
	// ErrRouteIsNotConstructed is returned when using an improperly initialized Route.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")
	// ErrCapacityExceeded is returned when adding a delivery would push the summed
	// required capacity past the assigned vehicle's maximum.
	ErrCapacityExceeded = errors.New("route capacity exceeded")
	// ErrDriverAndVehicleRequired is returned when starting a route that is missing
	// either assignment.
	ErrDriverAndVehicleRequired = errors.New("route needs a driver and a vehicle to start")
)

// Item is an ordered membership of a delivery on a route.
// The required capacity is denormalized from the delivery so the route can
// enforce its capacity invariant without loading delivery aggregates.
type Item struct {
	deliveryID       kernel.UUID
	requiredCapacity int
}

// NewItem creates a route item for the given delivery.
func NewItem(deliveryID kernel.UUID, requiredCapacity int) (Item, error) {
	if err := deliveryID.Validate(); err != nil {
		return Item{}, err
	}
	if requiredCapacity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("requiredCapacity",
			fmt.Errorf("%d is not greater than 0", requiredCapacity))
	}
	return Item{deliveryID: deliveryID, requiredCapacity: requiredCapacity}, nil
}

func (i Item) DeliveryID() kernel.UUID { return i.deliveryID }
func (i Item) RequiredCapacity() int   { return i.requiredCapacity }

// Route represents a planned trip that carries a set of deliveries, optionally
// assigned to a driver and a vehicle. It is the aggregate root that enforces
// the capacity invariant: the summed required capacity of its deliveries never
// exceeds the assigned vehicle's maximum.
//
// Lifecycle: planned routes collect deliveries; starting requires both a driver
// and a vehicle and stamps startedAt; completing stamps completedAt and records
// the actual distance and duration.
type Route struct {
	id               kernel.UUID
	name             string
	description      string
	driverID         *kernel.UUID
	vehicleID        *kernel.UUID
	routeDate        time.Time
	status           Status
	estimatedKm      float64
	actualKm         *float64
	estimatedMinutes int
	actualMinutes    *int
	items            []Item
	createdAt        time.Time
	startedAt        *time.Time
	completedAt      *time.Time

	guard guard.ConstructorGuard
}

// NewRoute creates a new planned Route without deliveries.
func NewRoute(
	id kernel.UUID,
	name, description string,
	driverID, vehicleID *kernel.UUID,
	routeDate time.Time,
	estimatedKm float64,
	estimatedMinutes int,
) (*Route, error) {
	route := &Route{
		status:    StatusPlanned,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		route.setID(id),
		route.setName(name),
		route.setRouteDate(routeDate),
		route.setDriverID(driverID),
		route.setVehicleID(vehicleID),
		route.setEstimates(estimatedKm, estimatedMinutes),
	); err != nil {
		return nil, err
	}

	route.description = description

	return route, nil
}

// RestoreRoute reconstructs a Route from persistent storage.
func RestoreRoute(
	id kernel.UUID,
	name, description string,
	driverID, vehicleID *kernel.UUID,
	routeDate time.Time,
	status Status,
	estimatedKm float64,
	actualKm *float64,
	estimatedMinutes int,
	actualMinutes *int,
	items []Item,
	createdAt time.Time,
	startedAt, completedAt *time.Time,
) (*Route, error) {
	route := &Route{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		route.setID(id),
		route.setName(name),
		route.setRouteDate(routeDate),
		route.setDriverID(driverID),
		route.setVehicleID(vehicleID),
		route.setEstimates(estimatedKm, estimatedMinutes),
		route.setStatus(status),
	); err != nil {
		return nil, err
	}

	route.description = description
	route.actualKm = actualKm
	route.actualMinutes = actualMinutes
	route.items = items
	route.startedAt = startedAt
	route.completedAt = completedAt

	return route, nil
}

// Validate checks that the Route was created via one of the constructors.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// IsEqual compares two routes by ID.
func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Route) ID() kernel.UUID         { return r.id }
func (r *Route) Name() string            { return r.name }
func (r *Route) Description() string     { return r.description }
func (r *Route) DriverID() *kernel.UUID  { return r.driverID }
func (r *Route) VehicleID() *kernel.UUID { return r.vehicleID }
func (r *Route) RouteDate() time.Time    { return r.routeDate }
func (r *Route) Status() Status          { return r.status }
func (r *Route) EstimatedKm() float64    { return r.estimatedKm }
func (r *Route) ActualKm() *float64      { return r.actualKm }
func (r *Route) EstimatedMinutes() int   { return r.estimatedMinutes }
func (r *Route) ActualMinutes() *int     { return r.actualMinutes }
func (r *Route) CreatedAt() time.Time    { return r.createdAt }
func (r *Route) StartedAt() *time.Time   { return r.startedAt }
func (r *Route) CompletedAt() *time.Time { return r.completedAt }

// Items returns the ordered delivery memberships of the route.
func (r *Route) Items() []Item {
	items := make([]Item, len(r.items))
	copy(items, r.items)
	return items
}

// UsedCapacity is the summed required capacity of the route's deliveries.
func (r *Route) UsedCapacity() int {
	total := 0
	for _, item := range r.items {
		total += item.requiredCapacity
	}
	return total
}

// ContainsDelivery reports whether the delivery is already on the route.
func (r *Route) ContainsDelivery(deliveryID kernel.UUID) bool {
	for _, item := range r.items {
		if item.deliveryID.IsEqual(deliveryID) {
			return true
		}
	}
	return false
}

// BelongsToDriver reports whether the route is assigned to the given driver.
func (r *Route) BelongsToDriver(driverID kernel.UUID) bool {
	return r.driverID != nil && r.driverID.IsEqual(driverID)
}

// AddDelivery appends a delivery to the route. vehicleMaxCapacity is the
// assigned vehicle's maximum, nil when no vehicle is assigned yet (no bound).
// Returns ErrCapacityExceeded when the delivery would not fit and
// ErrObjectAlreadyExists when it is already on the route.
func (r *Route) AddDelivery(deliveryID kernel.UUID, requiredCapacity int, vehicleMaxCapacity *int) error {
	item, err := NewItem(deliveryID, requiredCapacity)
	if err != nil {
		return err
	}
	if r.ContainsDelivery(deliveryID) {
		return errs.NewObjectAlreadyExistsError("deliveryId", deliveryID.String())
	}
	if vehicleMaxCapacity != nil && r.UsedCapacity()+requiredCapacity > *vehicleMaxCapacity {
		return fmt.Errorf("%w: %d used + %d required > %d max",
			ErrCapacityExceeded, r.UsedCapacity(), requiredCapacity, *vehicleMaxCapacity)
	}
	r.items = append(r.items, item)
	return nil
}

// RemoveDelivery removes a delivery from the route.
func (r *Route) RemoveDelivery(deliveryID kernel.UUID) error {
	for i, item := range r.items {
		if item.deliveryID.IsEqual(deliveryID) {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("deliveryId", deliveryID.String())
}

// AssignDriver assigns the route to a driver.
func (r *Route) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	r.driverID = &driverID
	return nil
}

// AssignVehicle assigns a vehicle to the route. Fails when the current cargo
// already exceeds the vehicle's maximum capacity.
func (r *Route) AssignVehicle(vehicleID kernel.UUID, maxCapacity int) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	if r.UsedCapacity() > maxCapacity {
		return fmt.Errorf("%w: %d used > %d max", ErrCapacityExceeded, r.UsedCapacity(), maxCapacity)
	}
	r.vehicleID = &vehicleID
	return nil
}

// Start moves a planned route to in_progress and stamps startedAt.
// Both a driver and a vehicle must be assigned.
func (r *Route) Start() error {
	if r.driverID == nil || r.vehicleID == nil {
		return ErrDriverAndVehicleRequired
	}

	newStatus, err := r.status.Start()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	r.status = newStatus
	r.startedAt = &now
	return nil
}

// Complete moves an in-progress route to completed, stamps completedAt and
// records the actual distance and duration when given.
func (r *Route) Complete(actualKm *float64, actualMinutes *int) error {
	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	r.status = newStatus
	r.completedAt = &now
	if actualKm != nil {
		r.actualKm = actualKm
	}
	if actualMinutes != nil {
		r.actualMinutes = actualMinutes
	}
	return nil
}

// Cancel abandons a planned or in-progress route.
func (r *Route) Cancel() error {
	newStatus, err := r.status.Cancel()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

// Update replaces the route's mutable planning attributes.
func (r *Route) Update(
	name, description string,
	driverID, vehicleID *kernel.UUID,
	routeDate time.Time,
	estimatedKm float64,
	estimatedMinutes int,
) error {
	if err := errors.Join(
		r.setName(name),
		r.setRouteDate(routeDate),
		r.setDriverID(driverID),
		r.setVehicleID(vehicleID),
		r.setEstimates(estimatedKm, estimatedMinutes),
	); err != nil {
		return err
	}
	r.description = description
	return nil
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Route) setRouteDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("routeDate")
	}
	r.routeDate = date
	return nil
}

func (r *Route) setDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}
	r.driverID = driverID
	return nil
}

func (r *Route) setVehicleID(vehicleID *kernel.UUID) error {
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return err
		}
	}
	r.vehicleID = vehicleID
	return nil
}

func (r *Route) setEstimates(km float64, minutes int) error {
	if km < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedKm",
			fmt.Errorf("%.2f is negative", km))
	}
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedMinutes",
			fmt.Errorf("%d is negative", minutes))
	}
	r.estimatedKm = km
	r.estimatedMinutes = minutes
	return nil
}

func (r *Route) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
