package pipeline

import (
	"workforce/internal/features/skills"
)

var pipelineRepository = &PostgresPipelineRepository{}
var demandRepository = &PostgresDemandRepository{}

var pipelineService = NewPipelineService(
	pipelineRepository,
	demandRepository,
	skills.GetSkillService(),
)

var pipelineController = &PipelineController{pipelineService: pipelineService}

func GetPipelineService() *PipelineService {
	return pipelineService
}

func GetPipelineController() *PipelineController {
	return pipelineController
}

func GetPipelineRepository() PipelineRepository {
	return pipelineRepository
}

func GetDemandRepository() DemandRepository {
	return demandRepository
}
