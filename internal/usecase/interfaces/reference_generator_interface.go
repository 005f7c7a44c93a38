package interfaces

//go:generate mockgen -source=reference_generator_interface.go -destination=mocks/reference_generator_interface_mock.go -package=mock_interfaces

// IReferenceGenerator supplies the random part of a transaction reference.
//
// Production code uses a UUID backed generator; tests inject a fixed one so
// references can be asserted exactly.

type IReferenceGenerator interface {
	Next() string
}
