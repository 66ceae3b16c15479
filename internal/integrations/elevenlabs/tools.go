package elevenlabs

import "fmt"

// BuildCenterTools собирает описания двух инструментов агента центра:
// поиск слотов и бронирование, с webhook-адресами этого сервиса
func BuildCenterTools(centerID, webhookBaseURL string) []Tool {
	return []Tool{
		{
			Name:        "get_slots",
			Description: "Récupère les créneaux disponibles pour le centre",
			Webhook: ToolWebhook{
				URL:    fmt.Sprintf("%s/webhook/elevenlabs/%s/get_slots", webhookBaseURL, centerID),
				Method: "POST",
			},
			Parameters: Schema{
				Type: "object",
				Properties: map[string]Property{
					"start_date": {
						Type:        "string",
						Format:      "date",
						Description: "Date de début de recherche (YYYY-MM-DD)",
					},
					"end_date": {
						Type:        "string",
						Format:      "date",
						Description: "Date de fin de recherche (YYYY-MM-DD)",
					},
					"vehicle_type": {
						Type:        "string",
						Enum:        []string{"voiture_particuliere", "4x4", "utilitaire", "moto", "camping_car"},
						Description: "Type de véhicule",
					},
					"preferred_time": {
						Type:        "string",
						Enum:        []string{"morning", "afternoon", "any"},
						Description: "Créneau préféré",
					},
					"specific_day": {
						Type:        "string",
						Description: "Jour spécifique demandé par le client, transmis mot pour mot (ex: 'lundi prochain')",
					},
					"period": {
						Type:        "string",
						Enum:        []string{"matin", "après-midi"},
						Description: "Période demandée pour un jour spécifique",
					},
				},
				Required: []string{"vehicle_type"},
			},
		},
		{
			Name:        "book",
			Description: "Réserve un créneau pour un client",
			Webhook: ToolWebhook{
				URL:    fmt.Sprintf("%s/webhook/elevenlabs/%s/book", webhookBaseURL, centerID),
				Method: "POST",
			},
			Parameters: Schema{
				Type: "object",
				Properties: map[string]Property{
					"slot_id": {
						Type:        "string",
						Description: "ID du créneau à réserver",
					},
					"client_info": {
						Type: "object",
						Properties: map[string]Property{
							"first_name":    {Type: "string"},
							"last_name":     {Type: "string"},
							"phone":         {Type: "string"},
							"email":         {Type: "string"},
							"vehicle_brand": {Type: "string"},
							"vehicle_model": {Type: "string"},
							"license_plate": {Type: "string"},
						},
						Required: []string{"first_name", "last_name", "phone", "vehicle_brand", "license_plate"},
					},
				},
				Required: []string{"slot_id", "client_info"},
			},
		},
	}
}
