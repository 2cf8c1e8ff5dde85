package repository

// Repository 所有 Repository 的聚合入口
// 各集合之间没有事务，也不做跨集合一致性维护
type Repository struct {
	Personnel PersonnelRepository
	DutyType  DutyTypeRepository
	DutyEntry DutyEntryRepository
	Image     ImageRepository
	Settings  SettingsRepository
}

// NewRepository 基于同一个 KVStore 创建 Repository 聚合
func NewRepository(kv KVStore) *Repository {
	return &Repository{
		Personnel: NewPersonnelRepo(kv),
		DutyType:  NewDutyTypeRepo(kv),
		DutyEntry: NewDutyEntryRepo(kv),
		Image:     NewImageRepo(kv),
		Settings:  NewSettingsRepo(kv),
	}
}
