package mocks

//go:generate mockery --name RecordStore --srcpkg github.com/statsbot-lab/guild-stats/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name Client --srcpkg github.com/statsbot-lab/guild-stats/internal/platform --output ./platform --outpkg platformmocks --with-expecter
//go:generate mockery --name Resolver --srcpkg github.com/statsbot-lab/guild-stats/internal/identity --output ./identity --outpkg identitymocks --with-expecter
