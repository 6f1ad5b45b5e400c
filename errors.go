package gui

import "errors"

// Sentinel errors returned (wrapped) by the toolkit. Match with errors.Is.
var (
	// ErrTypeMismatch reports a dynamically typed property value of the wrong type.
	ErrTypeMismatch = errors.New("gui: type mismatch")

	// ErrInvalidAlignmentAxis describes an alignment value offered to the wrong axis.
	// Alignment setters ignore such values; SetProperty reports it.
	ErrInvalidAlignmentAxis = errors.New("gui: alignment value belongs to the other axis")

	// ErrInvalidColor reports a colour string that could not be parsed.
	ErrInvalidColor = errors.New("gui: invalid colour")

	// ErrCounterUnderflow is the panic value when Enable is called more times than Disable.
	ErrCounterUnderflow = errors.New("gui: enable called more times than disable")

	// ErrUnknownWidget reports a scene entry whose type has no registered factory.
	ErrUnknownWidget = errors.New("gui: unknown widget type")

	// ErrUnknownProperty reports a property key a widget does not recognise.
	ErrUnknownProperty = errors.New("gui: unknown property")

	// ErrUnknownHandler reports a scene callback name missing from the handler table.
	ErrUnknownHandler = errors.New("gui: unknown handler")
)
