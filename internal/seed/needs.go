package seed

import (
	"context"
	"fmt"

	"entraide/internal/store"
	"entraide/pkg/types"
)

type fakeNeedSeed struct {
	Title          string
	Description    string
	City           types.NeedCity
	Category       types.NeedCategory
	WhatsappNumber string
	Status         types.NeedStatus
}

var fakeNeeds = []fakeNeedSeed{
	{
		Title:          "Nettoyage d'une cour d'école primaire",
		Description:    "Nous cherchons quelques volontaires un samedi matin pour remettre en état la cour de l'école du quartier avant la rentrée.",
		City:           types.NeedCityCasablanca,
		Category:       types.NeedCategoryCleaning,
		WhatsappNumber: "+212 6 61 23 45 67",
		Status:         types.NeedStatusOpen,
	},
	{
		Title:          "Soutien scolaire en mathématiques",
		Description:    "Deux collégiens ont besoin d'aide en mathématiques deux soirs par semaine. Niveau 4ème et 3ème.",
		City:           types.NeedCityRabat,
		Category:       types.NeedCategorySchoolAid,
		WhatsappNumber: "+212 6 62 34 56 78",
		Status:         types.NeedStatusOpen,
	},
	{
		Title:          "Don urgent de couvertures",
		Description:    "Une famille de cinq personnes a perdu son logement suite à un incendie et a besoin de couvertures et de vêtements chauds.",
		City:           types.NeedCityMarrakech,
		Category:       types.NeedCategoryUrgentDonation,
		WhatsappNumber: "+212 6 63 45 67 89",
		Status:         types.NeedStatusOpen,
	},
	{
		Title:          "Accompagnement administratif",
		Description:    "Recherche une personne pouvant aider un voisin âgé à remplir ses dossiers administratifs.",
		City:           types.NeedCityTanger,
		Category:       types.NeedCategoryOther,
		WhatsappNumber: "+212 6 64 56 78 90",
		Status:         types.NeedStatusResolved,
	},
	{
		Title:          "Cours de lecture pour adultes",
		Description:    "Un petit groupe d'adultes du quartier souhaite apprendre à lire. Nous cherchons un bénévole disponible le dimanche.",
		City:           types.NeedCityAgadir,
		Category:       types.NeedCategorySchoolAid,
		WhatsappNumber: "+212 6 65 67 89 01",
		Status:         types.NeedStatusOpen,
	},
}

// SeedFakeNeeds inserts one demo need per entry, round-robining owners
// across the seeded users. Resolved entries go through the same
// conditional update as production traffic.
func SeedFakeNeeds(ctx context.Context, needsRepo *store.NeedRepository) error {
	ownerIDs := fakeUserIDs()
	if len(ownerIDs) == 0 {
		return fmt.Errorf("no seed users to own needs")
	}

	seeded := 0
	for i, fakeNeed := range fakeNeeds {
		ownerID := ownerIDs[i%len(ownerIDs)]

		need := &types.Need{
			Title:           fakeNeed.Title,
			Description:     fakeNeed.Description,
			City:            fakeNeed.City,
			Category:        fakeNeed.Category,
			WhatsappNumber:  fakeNeed.WhatsappNumber,
			Status:          types.NeedStatusOpen,
			CreatedByUserID: ownerID,
		}

		if err := needsRepo.CreateNeed(ctx, need); err != nil {
			return fmt.Errorf("failed to create fake need %q: %w", fakeNeed.Title, err)
		}

		if fakeNeed.Status == types.NeedStatusResolved {
			if _, err := needsRepo.ResolveNeed(ctx, need.ID, ownerID); err != nil {
				return fmt.Errorf("failed to resolve fake need %q: %w", fakeNeed.Title, err)
			}
		}

		seeded++
	}

	fmt.Printf("Fake needs seeded: %d created\n", seeded)
	return nil
}
