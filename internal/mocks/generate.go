package mocks

//go:generate mockery --name HotStore --srcpkg github.com/statflow-lab/project-statflow/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name ColdStore --srcpkg github.com/statflow-lab/project-statflow/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
