package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/oldpence/tally/internal/money"
)

// Registry holds the known denomination systems by name.
// The built-in sterling system is always present; further systems come
// from Register or from CUE definition files via LoadDir.
//
// A Registry is populated at startup and then only read.
type Registry struct {
	systems map[string]*money.System
}

// New creates a registry with the built-in sterling system.
func New() *Registry {
	r := &Registry{systems: make(map[string]*money.System)}
	r.systems[money.Sterling().Name] = money.Sterling()
	return r
}

// Get returns the system with the given name.
func (r *Registry) Get(name string) (*money.System, error) {
	sys, ok := r.systems[name]
	if !ok {
		return nil, &LoadError{
			Code:    ErrCodeUnknownSystem,
			Message: fmt.Sprintf("unknown denomination system %q (known: %s)", name, strings.Join(r.Names(), ", ")),
		}
	}
	return sys, nil
}

// Names returns the registered system names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.systems))
	for name := range r.systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register validates and adds a system. Registering a name twice is an
// error; the built-in sterling system cannot be redefined.
func (r *Registry) Register(sys *money.System) error {
	if errs := ValidateSystem(sys); len(errs) > 0 {
		return &LoadError{
			Code:    ErrCodeInvalidSystem,
			Message: errs[0].Error(),
		}
	}
	if _, exists := r.systems[sys.Name]; exists {
		return &LoadError{
			Code:    ErrCodeDuplicate,
			Message: fmt.Sprintf("system %q is already registered", sys.Name),
		}
	}
	r.systems[sys.Name] = sys
	return nil
}

// LoadDir loads every system defined in the CUE files of a directory and
// registers them. It returns the names of the systems added, and fails
// fast on the first load or validation error.
func (r *Registry) LoadDir(dir string) ([]string, error) {
	value, err := buildDir(dir)
	if err != nil {
		return nil, err
	}

	systems, errs := CompileDir(value)
	if len(errs) > 0 {
		return nil, &LoadError{Code: ErrCodeInvalidSystem, Message: errs[0].Error()}
	}

	var added []string
	for _, sys := range systems {
		if err := r.Register(sys); err != nil {
			return added, err
		}
		added = append(added, sys.Name)
	}
	return added, nil
}

// ValidateDir compiles a directory of CUE system definitions without
// registering anything. It returns the names of the valid systems found
// and every validation error, in definition order.
func ValidateDir(dir string) ([]string, []ValidationError, error) {
	value, err := buildDir(dir)
	if err != nil {
		return nil, nil, err
	}
	systems, errs := CompileDir(value)
	names := make([]string, 0, len(systems))
	for _, sys := range systems {
		names = append(names, sys.Name)
	}
	return names, errs, nil
}

// CompileDir extracts every system under the top-level "system" struct of
// a built CUE value. Systems come back sorted by name so loading order is
// deterministic.
func CompileDir(value cue.Value) ([]*money.System, []ValidationError) {
	systemsVal := value.LookupPath(cue.ParsePath("system"))
	if !systemsVal.Exists() {
		return nil, []ValidationError{{
			Field: "system", Code: ErrCodeBuildFailed,
			Message: `no top-level "system" struct found`,
		}}
	}

	iter, err := systemsVal.Fields()
	if err != nil {
		return nil, []ValidationError{{
			Field: "system", Code: ErrCodeBuildFailed,
			Message: fmt.Sprintf("iterating systems: %v", err),
		}}
	}

	var systems []*money.System
	var allErrs []ValidationError
	for iter.Next() {
		sys, errs := CompileSystem(iter.Value())
		if len(errs) > 0 {
			allErrs = append(allErrs, errs...)
			continue
		}
		systems = append(systems, sys)
	}
	sort.Slice(systems, func(i, j int) bool { return systems[i].Name < systems[j].Name })
	return systems, allErrs
}

// buildDir loads the CUE files of a directory into a single value.
func buildDir(dir string) (cue.Value, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return cue.Value{}, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("systems directory not found: %s", dir)}
	}
	if err != nil {
		return cue.Value{}, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing systems directory: %v", err)}
	}
	if !info.IsDir() {
		return cue.Value{}, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}
	}

	cueFiles, err := filepath.Glob(filepath.Join(dir, "*.cue"))
	if err != nil {
		return cue.Value{}, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("scanning directory: %v", err)}
	}
	if len(cueFiles) == 0 {
		return cue.Value{}, &LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir, Package: "_"})
	if len(instances) == 0 {
		return cue.Value{}, &LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}
	}
	inst := instances[0]
	if inst.Err != nil {
		return cue.Value{}, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return cue.Value{}, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}
	}
	return value, nil
}
