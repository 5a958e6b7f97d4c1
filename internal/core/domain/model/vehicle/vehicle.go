package vehicle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle represents a fleet vehicle that carries deliveries on routes.
// It is an aggregate root that owns the vehicle's identity, capacity and
// operational status. The plate is unique across the fleet.
//
// Business rules:
//   - Max capacity must be at least 1; it bounds the sum of required
//     capacities of the deliveries on a route using this vehicle
//   - New vehicles start as available
//   - Assigning a driver marks the vehicle in_use and records the driver
//   - Releasing returns it to available and clears the driver
//   - Completing a route adds the route's actual distance to the odometer
type Vehicle struct {
	id              kernel.UUID
	plate           string
	model           string
	brand           string
	kind            Kind
	maxCapacity     int
	year            int
	odometerKm      float64
	status          Status
	currentDriverID *kernel.UUID
	registeredAt    time.Time

	guard guard.ConstructorGuard
}

// NewVehicle creates a new Vehicle in the available status.
func NewVehicle(
	id kernel.UUID,
	plate, model, brand string,
	kind Kind,
	maxCapacity, year int,
	odometerKm float64,
) (*Vehicle, error) {
	vehicle := &Vehicle{
		status:       StatusAvailable,
		registeredAt: time.Now().UTC(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setPlate(plate),
		vehicle.setKind(kind),
		vehicle.setMaxCapacity(maxCapacity),
		vehicle.setOdometer(odometerKm),
	); err != nil {
		return nil, err
	}

	vehicle.model = model
	vehicle.brand = brand
	vehicle.year = year

	return vehicle, nil
}

// RestoreVehicle reconstructs a Vehicle from persistent storage.
func RestoreVehicle(
	id kernel.UUID,
	plate, model, brand string,
	kind Kind,
	maxCapacity, year int,
	odometerKm float64,
	status Status,
	currentDriverID *kernel.UUID,
	registeredAt time.Time,
) (*Vehicle, error) {
	vehicle := &Vehicle{
		registeredAt: registeredAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setPlate(plate),
		vehicle.setKind(kind),
		vehicle.setMaxCapacity(maxCapacity),
		vehicle.setOdometer(odometerKm),
		vehicle.setStatus(status),
	); err != nil {
		return nil, err
	}

	vehicle.model = model
	vehicle.brand = brand
	vehicle.year = year
	vehicle.currentDriverID = currentDriverID

	return vehicle, nil
}

// Validate checks that the Vehicle was created via one of the constructors.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by ID.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

func (v *Vehicle) ID() kernel.UUID               { return v.id }
func (v *Vehicle) Plate() string                 { return v.plate }
func (v *Vehicle) Model() string                 { return v.model }
func (v *Vehicle) Brand() string                 { return v.brand }
func (v *Vehicle) Kind() Kind                    { return v.kind }
func (v *Vehicle) MaxCapacity() int              { return v.maxCapacity }
func (v *Vehicle) Year() int                     { return v.year }
func (v *Vehicle) OdometerKm() float64           { return v.odometerKm }
func (v *Vehicle) Status() Status                { return v.status }
func (v *Vehicle) CurrentDriverID() *kernel.UUID { return v.currentDriverID }
func (v *Vehicle) RegisteredAt() time.Time       { return v.registeredAt }

// IsAvailable reports whether the vehicle can be assigned.
func (v *Vehicle) IsAvailable() bool {
	return v.status == StatusAvailable
}

// AssignDriver marks the vehicle in_use by the given driver.
// Only available vehicles can be assigned.
func (v *Vehicle) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if !v.IsAvailable() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s vehicle cannot be assigned", v.status))
	}
	v.status = StatusInUse
	v.currentDriverID = &driverID
	return nil
}

// Release returns the vehicle to available and clears the current driver.
func (v *Vehicle) Release() {
	v.status = StatusAvailable
	v.currentDriverID = nil
}

// AddOdometer adds the distance of a completed route to the odometer.
func (v *Vehicle) AddOdometer(km float64) error {
	if km < 0 {
		return errs.NewValueIsInvalidErrorWithCause("km",
			fmt.Errorf("%.2f is negative", km))
	}
	v.odometerKm += km
	return nil
}

// Update replaces the vehicle's mutable attributes. The plate is immutable.
func (v *Vehicle) Update(
	model, brand string,
	kind Kind,
	maxCapacity, year int,
	odometerKm float64,
	status Status,
) error {
	if err := errors.Join(
		v.setKind(kind),
		v.setMaxCapacity(maxCapacity),
		v.setOdometer(odometerKm),
		v.setStatus(status),
	); err != nil {
		return err
	}
	v.model = model
	v.brand = brand
	v.year = year
	return nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setPlate(plate string) error {
	if strings.TrimSpace(plate) == "" {
		return errs.NewValueIsRequiredError("plate")
	}
	v.plate = strings.ToUpper(strings.TrimSpace(plate))
	return nil
}

func (v *Vehicle) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	v.kind = kind
	return nil
}

func (v *Vehicle) setMaxCapacity(capacity int) error {
	if capacity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("maxCapacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}
	v.maxCapacity = capacity
	return nil
}

func (v *Vehicle) setOdometer(km float64) error {
	if km < 0 {
		return errs.NewValueIsInvalidErrorWithCause("odometerKm",
			fmt.Errorf("%.2f is negative", km))
	}
	v.odometerKm = km
	return nil
}

func (v *Vehicle) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	v.status = status
	return nil
}
