// Package modules composes the default web module registry.
package modules

import (
	module "github.com/louisbranch/carbonledger/internal/services/web/module"
	"github.com/louisbranch/carbonledger/internal/services/web/modules/auth"
	"github.com/louisbranch/carbonledger/internal/services/web/modules/dashboard"
	"github.com/louisbranch/carbonledger/internal/services/web/modules/marketplace"
	"github.com/louisbranch/carbonledger/internal/services/web/modules/public"
)

// Default returns the stable web modules in registration order.
func Default() []module.Module {
	return []module.Module{
		public.New(),
		auth.New(),
		dashboard.New(),
		marketplace.New(),
	}
}
