package domain

// Config is the optional kml2waypoints.yaml configuration.
// Only the elevation profile reads it; the converter is configuration-free.
type Config struct {
	SRTM    SRTMConfig
	Profile ProfileConfig
}

type SRTMConfig struct {
	DataDir string
}

type ProfileConfig struct {
	// GranularityArcsec is the distance between samples along a leg.
	GranularityArcsec int
	Workers           int
}

// DefaultConfig mirrors the layout the original elevation tool expected.
func DefaultConfig() Config {
	return Config{
		SRTM: SRTMConfig{DataDir: "data"},
		Profile: ProfileConfig{
			GranularityArcsec: 2,
			Workers:           4,
		},
	}
}
