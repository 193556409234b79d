//go:build !linux

package input

func openDevice(path string, opts Options) (device, error) {
	return nil, ErrUnsupported
}
