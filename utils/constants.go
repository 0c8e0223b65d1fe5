// File: utils/constants.go
package utils

// Storage keys for persisted session artifacts.
const (
	UserDataKey     = "userData"
	UserTokenKey    = "userToken"
	RefreshTokenKey = "refreshToken"
	DeviceIDKey     = "deviceID"
)

// KeyringService is the service name under which tokens are filed in the OS
// keyring.
const KeyringService = "cocoliving"
