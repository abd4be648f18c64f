package domain

// Mount maps a host path into the container.
type Mount struct {
	HostPath      string `json:"host_path"`
	ContainerPath string `json:"container_path"`
}

// String renders the mount in the engine's -v argument form.
func (m Mount) String() string {
	return m.HostPath + ":" + m.ContainerPath
}

// RunConfig carries what a containerized run of the built image needs from
// the host: volume mounts plus environment variables to inject.
type RunConfig struct {
	Mounts []Mount           `json:"mounts"`
	Env    map[string]string `json:"env"`
}

// VolumeArgs renders the mounts as container-engine command arguments,
// e.g. ["-v", "/tmp/mlruns.db:/mlflow/tmp/mlruns"].
func (rc RunConfig) VolumeArgs() []string {
	var args []string
	for _, m := range rc.Mounts {
		args = append(args, "-v", m.String())
	}
	return args
}
