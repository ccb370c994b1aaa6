package consts

// Set at build time with -ldflags "-X bitbucket.org/kleinnic74/geoangles/consts.GitCommit=..."
var (
	GitCommit string
	GitRepo   string
)
