package consts

const (
	ApplicationName = "Anniversary Media Server"
	// ApplicationVersion 可在构建时通过 -ldflags 覆盖
	ApplicationVersion = "1.0.0"
)
