package fx

// Convertible is implemented by types that know how to box themselves,
// possibly into a payload type other than their own.
type Convertible[T any] interface {
	ToBox() Box[T]
}

// ToBox boxes any value. It is the default conversion for every type,
// strings, numbers, URLs, slices and maps included.
func ToBox[T any](v T) Box[T] {
	return New(v)
}

// Of boxes a Convertible through its own conversion.
func Of[T any](c Convertible[T]) Box[T] {
	return c.ToBox()
}

// ResultProvider is the read side shared by Result and the chain types.
type ResultProvider[T any] interface {
	// Box returns the successful Box or the failure
	Box() (Box[T], error)
	// Err returns the error if the operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}
