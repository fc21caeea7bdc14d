package skills

import (
	"workforce/internal/cache"
	cache_utils "workforce/internal/util/cache"
)

var skillRepository = &PostgresSkillRepository{}
var categoryRepository = &PostgresCategoryRepository{}
var mappingRepository = &PostgresMappingRepository{}

var skillService = NewSkillService(skillRepository, categoryRepository, mappingRepository)

var skillController = &SkillController{skillService: skillService}

func GetSkillService() *SkillService {
	return skillService
}

func GetSkillController() *SkillController {
	return skillController
}

func GetSkillRepository() SkillRepository {
	return skillRepository
}

func GetMappingRepository() MappingRepository {
	return mappingRepository
}

// SetupCache attaches the Valkey-backed skill cache. Called from main once
// config is loaded; tests and cacheless deployments skip it.
func SetupCache() {
	if !cache.IsConfigured() {
		return
	}

	skillService.SetSkillCache(
		cache_utils.NewCacheUtil[Skill](cache.GetCache(), "skills:"),
	)
}
