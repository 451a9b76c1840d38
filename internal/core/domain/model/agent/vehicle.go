package agent

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// VehicleType describes how an agent moves deliveries around.
type VehicleType string

const (
	VehicleBicycle   VehicleType = "bicycle"
	VehicleMotorbike VehicleType = "motorbike"
	VehicleCar       VehicleType = "car"
)

// getValidVehicleTypes returns the set of recognized vehicle types.
func getValidVehicleTypes() map[VehicleType]struct{} {
	return map[VehicleType]struct{}{
		VehicleBicycle:   {},
		VehicleMotorbike: {},
		VehicleCar:       {},
	}
}

// Validate checks that the VehicleType is one of the defined values.
func (v VehicleType) Validate() error {
	if _, ok := getValidVehicleTypes()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicleType",
			fmt.Errorf("%q is not a valid vehicle type", string(v)))
	}
	return nil
}

// String returns the storage representation of the vehicle type.
func (v VehicleType) String() string {
	return string(v)
}
