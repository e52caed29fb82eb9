package officials

import "github.com/noah-isme/club-officials-api/internal/models"

func strPtr(s string) *string { return &s }

func handled(h models.HandledBy) *models.HandledBy { return &h }

func proposed(name string) *models.Assignment {
	return &models.Assignment{PlayerName: name}
}

func guardianConfirmed(name, confirmer string) *models.Assignment {
	return &models.Assignment{PlayerName: name, HandledBy: handled(models.HandledByGuardian), ConfirmedBy: strPtr(confirmer)}
}

func poolConfirmed(name string, confirmer *string) *models.Assignment {
	return &models.Assignment{PlayerName: name, HandledBy: handled(models.HandledByPool), ConfirmedBy: confirmer}
}

func game(scorekeeper, clock *models.Assignment) models.Game {
	return models.Game{Officials: models.Officials{Scorekeeper: scorekeeper, Clock: clock}}
}
