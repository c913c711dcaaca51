// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

type LogLayer string

func (l LogLayer) String() string {
	return string(l)
}

const (
	LogLayerOntapAPI  = LogLayer("ontap_api")
	LogLayerOntapREST = LogLayer("ontap_rest")
	LogLayerOntapZAPI = LogLayer("ontap_zapi")
	LogLayerCLI       = LogLayer("cli")
	LogLayerUtils     = LogLayer("utils")
	LogLayerNone      = LogLayer("none")
)

var Layers = []LogLayer{
	LogLayerOntapAPI,
	LogLayerOntapREST,
	LogLayerOntapZAPI,
	LogLayerCLI,
	LogLayerUtils,
}

// IsValidLogLayer reports whether the supplied name is one of the known layers.
func IsValidLogLayer(name string) bool {
	for _, l := range Layers {
		if string(l) == name {
			return true
		}
	}
	return false
}
