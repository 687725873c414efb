package sea

import "runtime"

// Resource name and fuse sentinel defined by the Node.js SEA feature.
// postject searches the copied executable for the sentinel to locate
// the injection point.
const (
	seaBlobResource = "NODE_SEA_BLOB"
	seaFuseSentinel = "NODE_SEA_FUSE_fce680ab2cc467b6e072b8b5df1996b2"
)

// postjectArgs builds the postject invocation for the host platform.
func postjectArgs(executable, blobPath string) []string {
	args := []string{
		executable,
		seaBlobResource,
		blobPath,
		"--sentinel-fuse", seaFuseSentinel,
	}
	if runtime.GOOS == "darwin" {
		args = append(args, "--macho-segment-name", "NODE_SEA")
	}
	return args
}
