package repo

import "github.com/google/wire"

// ProviderSet exposes the repository constructors.
var ProviderSet = wire.NewSet(NewRepositories)
