package domain

import "errors"

// Error variables returned by the repository layer. Controllers translate
// these once into HTTP responses; messages match the client contract.
var (
	ErrTagInUse   = errors.New("Tag already in use")
	ErrEPCInUse   = errors.New("EPC already in use")
	ErrTagUnknown = errors.New("TID not found")

	ErrTagNotFound      = errors.New("RFID Tag ID not found")
	ErrUserNotFound     = errors.New("User not found")
	ErrLoaderNotFound   = errors.New("Loaded By ID not found")
	ErrReceiverNotFound = errors.New("Received By ID not found")
	ErrManifestNotFound = errors.New("Manifest ID not found")
	ErrLocationNotFound = errors.New("Location ID not found")

	ErrTagLoaded   = errors.New("RFID Tag ID has already been loaded")
	ErrTagReceived = errors.New("RFID Tag ID has already been used")

	ErrLoadingNotFound   = errors.New("Loading not found")
	ErrReceivingNotFound = errors.New("Receiving not found")

	ErrNoFields = errors.New("At least one field is required for update.")
)
