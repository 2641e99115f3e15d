// Package kernel provides the value objects shared by every storefront
// aggregate.
//
// The package includes:
//   - UUID: a validated identifier wrapper around google/uuid
//   - Price: a currency-tagged amount split into tax-exclusive part and tax
//   - GeoPoint: a WGS84 coordinate used by store locations and addresses
//
// All values are immutable. Their zero values are invalid and report an
// error from Validate, so they cannot slip through a constructor by accident.
package kernel
