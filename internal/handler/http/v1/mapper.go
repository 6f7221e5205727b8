package v1

import "github.com/YoussefElshafei/BridgeAid-Project/internal/models"

// ClusterToConfirmedEntry преобразует доменный кластер в DTO для карты
func ClusterToConfirmedEntry(cluster *models.IncidentCluster) *ConfirmedEntryResponse {
	return &ConfirmedEntryResponse{
		IncidentID:  cluster.ID,
		Incident:    cluster.IncidentType,
		Lat:         cluster.Latitude,
		Lng:         cluster.Longitude,
		ReportCount: cluster.ReportCount,
		Timestamp:   cluster.LastReportAt,
	}
}

// ClustersToConfirmedEntries преобразует слайс кластеров в слайс DTO
func ClustersToConfirmedEntries(clusters []*models.IncidentCluster) []*ConfirmedEntryResponse {
	entries := make([]*ConfirmedEntryResponse, len(clusters))
	for i, cluster := range clusters {
		entries[i] = ClusterToConfirmedEntry(cluster)
	}
	return entries
}

// VolunteerToResponse преобразует доменную модель волонтера в DTO
func VolunteerToResponse(volunteer *models.Volunteer) *VolunteerResponse {
	return &VolunteerResponse{
		Email:     volunteer.Email,
		LegalName: volunteer.LegalName,
		Location:  volunteer.Location,
		Category:  volunteer.Category,
	}
}

// VolunteersToResponses преобразует слайс волонтеров в слайс DTO
func VolunteersToResponses(volunteers []*models.Volunteer) []*VolunteerResponse {
	responses := make([]*VolunteerResponse, len(volunteers))
	for i, volunteer := range volunteers {
		responses[i] = VolunteerToResponse(volunteer)
	}
	return responses
}

// DTOToAidRequestModel преобразует DTO запроса помощи в доменную модель
func DTOToAidRequestModel(dto AidRequestRequest) *models.AidRequest {
	return &models.AidRequest{
		Name:          dto.Name,
		Contact:       dto.Contact,
		Address:       dto.Address,
		AidType:       dto.AidType,
		Description:   dto.Description,
		Urgency:       dto.Urgency,
		HouseholdSize: dto.HouseholdSize,
	}
}

// AidRequestToResponse преобразует доменную модель запроса помощи в DTO
func AidRequestToResponse(request *models.AidRequest) *AidRequestResponse {
	return &AidRequestResponse{
		ID:            request.ID,
		Name:          request.Name,
		Contact:       request.Contact,
		Address:       request.Address,
		AidType:       request.AidType,
		Description:   request.Description,
		Urgency:       request.Urgency,
		HouseholdSize: request.HouseholdSize,
		CreatedAt:     request.CreatedAt,
	}
}

// AidRequestsToResponses преобразует слайс запросов помощи в слайс DTO
func AidRequestsToResponses(requests []*models.AidRequest) []*AidRequestResponse {
	responses := make([]*AidRequestResponse, len(requests))
	for i, request := range requests {
		responses[i] = AidRequestToResponse(request)
	}
	return responses
}
