package constants

import "os"

// defaults synthesized at offset 0 when a file has none
const (
	DefaultNumerator     = 4
	DefaultDenominator   = 4
	DefaultFifths        = 0
	DefaultMicrosPerBeat = 500000
)

const MicrosPerMinute = 60 * 1000 * 1000

const DensityPrecision = 4

func GetAsapRoot() string {
	return os.Getenv("ASAP_ROOT")
}

func GetLayout() string {
	return os.Getenv("MIDIRECT_LAYOUT")
}

func GetLogLevel() string {
	return os.Getenv("MIDIRECT_LOG_LEVEL")
}

func GetIntervalFormat() string {
	return os.Getenv("MIDIRECT_INTERVAL_FORMAT")
}

func GetComposerTable() string {
	return os.Getenv("COMPOSER_TABLE")
}

func GetDynamoEndpoint() string {
	return os.Getenv("DYNAMODB_ENDPOINT")
}

func GetRegion() string {
	return os.Getenv("AWS_REGION")
}

func GetAddr() string {
	return os.Getenv("MIDIRECT_ADDR")
}
