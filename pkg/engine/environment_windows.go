//go:build windows

package engine

import "golang.org/x/sys/windows/registry"

// RefreshEnvironmentPath re-reads the machine and user PATH values directly
// from the registry, the same two keys the shim's Install-ChocolateyPath
// writes to and its Update-SessionEnvironment helper reads. A foreign post-install
// script can extend PATH as a side effect that this process's own
// os.Environ() snapshot never observes; this lets the Orchestrator log the
// PATH a freshly-spawned child process would actually inherit, without
// re-spawning a shell just to ask it.
func RefreshEnvironmentPath() (string, error) {
	machine, err := readRegistryPath(registry.LOCAL_MACHINE, `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`)
	if err != nil {
		return "", err
	}
	user, err := readRegistryPath(registry.CURRENT_USER, `Environment`)
	if err != nil {
		return "", err
	}
	if user == "" {
		return machine, nil
	}
	if machine == "" {
		return user, nil
	}
	return machine + ";" + user, nil
}

func readRegistryPath(root registry.Key, path string) (string, error) {
	k, err := registry.OpenKey(root, path, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()

	value, _, err := k.GetStringValue("Path")
	if err == registry.ErrNotExist {
		return "", nil
	}
	return value, err
}
