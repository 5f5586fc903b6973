package consts

// SatLayerPromNamespace is the prometheus namespace shared by all SatLayer
// indicators.
const SatLayerPromNamespace = "satlayer"
