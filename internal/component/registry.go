package component

import (
	"fmt"
	"slices"
)

// Registry holds the known REANA component repositories. All lists every
// repository; Cluster lists the subset that together forms a deployable
// REANA cluster. A Registry is immutable after construction and safe for
// concurrent use.
type Registry struct {
	All     []string
	Cluster []string
}

// defaultAll is the full list of REANA source code repositories.
var defaultAll = []string{
	"reana",
	"reana-client",
	"reana-cluster",
	"reana-commons",
	"reana-demo-alice-lego-train-test-run",
	"reana-demo-atlas-recast",
	"reana-demo-bsm-search",
	"reana-demo-cms-h4l",
	"reana-demo-helloworld",
	"reana-demo-lhcb-d2pimumu",
	"reana-demo-root6-roofit",
	"reana-demo-worldpopulation",
	"reana-env-aliphysics",
	"reana-env-jupyter",
	"reana-env-root6",
	"reana-job-controller",
	"reana-message-broker",
	"reana-server",
	"reana-ui",
	"reana-workflow-commons",
	"reana-workflow-controller",
	"reana-workflow-engine-cwl",
	"reana-workflow-engine-serial",
	"reana-workflow-engine-yadage",
	"reana-workflow-monitor",
	"reana.io",
}

// defaultCluster is the subset of repositories that make up a runnable
// REANA cluster, as opposed to demos, environments and auxiliary repos.
var defaultCluster = []string{
	"reana-commons",
	"reana-job-controller",
	"reana-message-broker",
	"reana-server",
	"reana-workflow-commons",
	"reana-workflow-controller",
	"reana-workflow-engine-cwl",
	"reana-workflow-engine-serial",
	"reana-workflow-engine-yadage",
	"reana-workflow-monitor",
}

// DefaultRegistry returns the built-in REANA component registry.
func DefaultRegistry() *Registry {
	return &Registry{All: defaultAll, Cluster: defaultCluster}
}

// Contains reports whether name is a known standard component name.
func (r *Registry) Contains(name string) bool {
	return slices.Contains(r.All, name)
}

// ShortNames returns the abbreviated form of every known component,
// in registry order.
func (r *Registry) ShortNames() []string {
	short := make([]string, len(r.All))
	for i, name := range r.All {
		short[i] = Abbreviate(name)
	}
	return short
}

// Validate checks the registry invariants: every cluster component must be
// listed in All, and no two components may share an abbreviation. The
// abbreviation scheme does not guarantee uniqueness by construction, so a
// registry must be validated before it is used for short-name resolution.
func (r *Registry) Validate() error {
	for _, name := range r.Cluster {
		if !r.Contains(name) {
			return fmt.Errorf("cluster component %q is not listed in the full component list", name)
		}
	}

	seen := make(map[string]string, len(r.All))
	for _, name := range r.All {
		short := Abbreviate(name)
		if other, ok := seen[short]; ok {
			return fmt.Errorf("components %q and %q share the abbreviation %q", other, name, short)
		}
		seen[short] = name
	}

	return nil
}
