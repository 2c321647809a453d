// Package all registers every supported engine adapter. Import it for its
// side effects:
//
//	import _ "github.com/privalens/privalens-engine/pkg/adapters/datasource/all"
//
// Callers that only need a subset can import the engine packages directly.
package all

import (
	_ "github.com/privalens/privalens-engine/pkg/adapters/datasource/mongodb"
	_ "github.com/privalens/privalens-engine/pkg/adapters/datasource/mysql"
	_ "github.com/privalens/privalens-engine/pkg/adapters/datasource/postgres"
	_ "github.com/privalens/privalens-engine/pkg/adapters/datasource/redis"
	_ "github.com/privalens/privalens-engine/pkg/adapters/datasource/sqlite"
	_ "github.com/privalens/privalens-engine/pkg/adapters/datasource/sqlserver"
)
