package directory

import "github.com/advokati/go-directory/internal/runtimeconfig"

var (
	ErrDefaultLocaleUnsupported   = runtimeconfig.ErrDefaultLocaleUnsupported
	ErrLocaleUnknown              = runtimeconfig.ErrLocaleUnknown
	ErrStorageDriverUnknown       = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired         = runtimeconfig.ErrStorageDSNRequired
	ErrCanonicalSyncLocaleUnknown = runtimeconfig.ErrCanonicalSyncLocaleUnknown
	ErrDetectionThresholdInvalid  = runtimeconfig.ErrDetectionThresholdInvalid
	ErrCacheTTLInvalid            = runtimeconfig.ErrCacheTTLInvalid
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config        = runtimeconfig.Config
	StorageConfig = runtimeconfig.StorageConfig
	SyncConfig    = runtimeconfig.SyncConfig
	CacheConfig   = runtimeconfig.CacheConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
