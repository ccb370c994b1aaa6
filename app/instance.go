package app

import (
	"bitbucket.org/kleinnic74/geoangles/consts"
	"bitbucket.org/kleinnic74/geoangles/swarm"
)

func DefaultInstanceProperties() []swarm.PropertyDefinition {
	return []swarm.PropertyDefinition{
		swarm.WithPropertyValue("gc", consts.GitCommit),
		swarm.WithPropertyValue("gr", consts.GitRepo),
		swarm.WithPropertyValue("dev", devModeProperty()),
	}
}

func devModeProperty() string {
	if consts.IsDevMode() {
		return "true"
	}
	return ""
}
