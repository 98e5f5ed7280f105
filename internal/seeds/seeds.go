// Package seeds loads and unloads the canonical demo fixtures. Loading is
// idempotent: every row is looked up by its natural key first, so running
// the seeder twice leaves the same rows as running it once. Unloading
// works in strict reverse dependency order because later tables reference
// earlier ones by foreign key.
package seeds

import (
	"errors"
	"fmt"
	"log"

	"pokedex/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder seeds and resets the database. schema is an optional prefix for
// production Postgres deployments; when set, resets use TRUNCATE with
// RESTART IDENTITY, otherwise plain DELETE (the SQLite development path).
type Seeder struct {
	db     *gorm.DB
	schema string
}

// New creates a Seeder. schema may be empty.
func New(db *gorm.DB, schema string) *Seeder {
	return &Seeder{
		db:     db,
		schema: schema,
	}
}

// SeedAll loads every fixture in dependency order:
// users -> pokemon -> reviews -> lists (+ memberships) -> images.
func (s *Seeder) SeedAll() error {
	users, err := s.seedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	pokemon, err := s.seedPokemon(users[0])
	if err != nil {
		return fmt.Errorf("failed to seed pokemon: %w", err)
	}
	if err := s.seedReviews(users, pokemon); err != nil {
		return fmt.Errorf("failed to seed reviews: %w", err)
	}
	if err := s.seedLists(users, pokemon); err != nil {
		return fmt.Errorf("failed to seed lists: %w", err)
	}
	if err := s.seedImages(users, pokemon); err != nil {
		return fmt.Errorf("failed to seed images: %w", err)
	}
	log.Println("All seeds completed successfully")
	return nil
}

// UndoAll empties every seeded table in reverse dependency order.
func (s *Seeder) UndoAll() error {
	tables := []string{"images", "list_pokemon", "lists", "reviews", "pokemon", "users"}
	for _, table := range tables {
		var stmt string
		if s.schema != "" {
			stmt = fmt.Sprintf("TRUNCATE TABLE %s.%s RESTART IDENTITY CASCADE", s.schema, table)
		} else {
			stmt = fmt.Sprintf("DELETE FROM %s", table)
		}
		if err := s.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to reset table %s: %w", table, err)
		}
	}
	log.Println("All seeds undone successfully")
	return nil
}

func (s *Seeder) seedUsers() ([]models.User, error) {
	fixtures := []struct {
		Username string
		Email    string
		Password string
	}{
		{"Demo", "demo@aa.io", "password"},
		{"marnie", "marnie@aa.io", "password"},
		{"bobbie", "bobbie@aa.io", "password"},
		{"ash", "ash@aa.io", "password"},
	}

	users := make([]models.User, 0, len(fixtures))
	for _, f := range fixtures {
		var existing models.User
		err := s.db.First(&existing, "username = ?", f.Username).Error
		if err == nil {
			users = append(users, existing)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(f.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user := models.User{Username: f.Username, Email: f.Email, Password: string(hashed)}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) seedPokemon(owner models.User) ([]models.Pokemon, error) {
	fixtures := []models.Pokemon{
		{
			Name:        "Pikachu",
			Type:        "Electric",
			Description: "An Electric-type Pokémon that stores energy in its cheeks. It releases this energy when threatened.",
			Region:      "Kanto",
			Category:    "Mouse Pokémon",
		},
		{
			Name:          "Charizard",
			Type:          "Fire",
			TypeSecondary: "Flying",
			Description:   "A powerful Fire/Flying-type Pokémon that can melt boulders with its flames.",
			Region:        "Kanto",
			Category:      "Flame Pokémon",
		},
		{
			Name:        "Blastoise",
			Type:        "Water",
			Description: "A Water-type Pokémon with powerful water cannons that can blast through steel.",
			Region:      "Kanto",
			Category:    "Shellfish Pokémon",
		},
		{
			Name:          "Venusaur",
			Type:          "Grass",
			TypeSecondary: "Poison",
			Description:   "A Grass/Poison-type Pokémon with a large flower on its back that releases a soothing fragrance.",
			Region:        "Kanto",
			Category:      "Seed Pokémon",
		},
		{
			Name:          "Gengar",
			Type:          "Ghost",
			TypeSecondary: "Poison",
			Description:   "A mischievous Ghost/Poison-type Pokémon that hides in shadows and loves to play pranks.",
			Region:        "Kanto",
			Category:      "Shadow Pokémon",
		},
		{
			Name:          "Dragonite",
			Type:          "Dragon",
			TypeSecondary: "Flying",
			Description:   "A rare Dragon/Flying-type Pokémon known for its intelligence and ability to fly faster than sound.",
			Region:        "Johto",
			Category:      "Dragon Pokémon",
		},
	}

	pokemon := make([]models.Pokemon, 0, len(fixtures))
	for _, f := range fixtures {
		var existing models.Pokemon
		err := s.db.First(&existing, "name = ?", f.Name).Error
		if err == nil {
			pokemon = append(pokemon, existing)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		// Fixture pokemon belong to the demo user
		f.UserID = owner.ID
		if err := s.db.Create(&f).Error; err != nil {
			return nil, err
		}
		pokemon = append(pokemon, f)
	}
	return pokemon, nil
}

func (s *Seeder) seedReviews(users []models.User, pokemon []models.Pokemon) error {
	fixtures := []struct {
		User    int
		Pokemon int
		Rating  int
		Title   string
		Body    string
	}{
		{0, 0, 5, "Absolutely shocking experience!", "Pikachu was incredibly energetic and friendly. The electric atmosphere was amazing! Definitely worth visiting if you're looking for a spark in your Pokemon journey."},
		{1, 0, 4, "Cute but crowded", "Pikachu is adorable as expected, but the location was quite crowded with other trainers. Still, the experience was electrifying!"},
		{0, 1, 5, "Fire-breathing excellence!", "Charizard was majestic and powerful. The valley location is breathtaking, and watching Charizard fly was an unforgettable experience."},
		{2, 2, 4, "Water you waiting for?", "Blastoise was impressive with those water cannons! The gym setting is perfect, though it can get a bit wet. Bring a towel!"},
		{1, 3, 5, "Nature at its finest", "Venusaur's garden is absolutely beautiful. The aroma from the flower is so calming. Perfect spot for nature lovers!"},
		{3, 4, 4, "Spooky but fun", "Gengar was definitely spooky but in a fun way! The tower has great atmosphere. Just don't go alone at night!"},
		{2, 5, 5, "Dragon master experience", "Dragonite was intelligent and gentle despite its size. Watching it break the sound barrier was incredible!"},
		{3, 0, 5, "My best buddy", "Nothing beats travelling with Pikachu. Ten out of five if I could."},
	}

	for _, f := range fixtures {
		user, poke := users[f.User], pokemon[f.Pokemon]
		var existing models.Review
		err := s.db.First(&existing, "user_id = ? AND pokemon_id = ? AND title = ?", user.ID, poke.ID, f.Title).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		review := models.Review{
			UserID:    user.ID,
			PokemonID: poke.ID,
			Rating:    f.Rating,
			Title:     f.Title,
			Body:      f.Body,
		}
		if err := s.db.Create(&review).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedLists(users []models.User, pokemon []models.Pokemon) error {
	listFixtures := []struct {
		User        int
		Name        string
		Description string
	}{
		{0, "My Favorite Electric Types", "A collection of the best electric Pokemon I've encountered"},
		{0, "Starter Pokemon Collection", "All the starter Pokemon from different regions"},
		{1, "Fire Type Masters", "The hottest fire type Pokemon around"},
		{2, "Water Adventures", "Best water Pokemon for aquatic adventures"},
		{3, "Ghostly Encounters", "Spooky ghost type Pokemon I've met"},
	}

	listsByName := make(map[string]models.List, len(listFixtures))
	for _, f := range listFixtures {
		user := users[f.User]
		var existing models.List
		err := s.db.First(&existing, "name = ? AND user_id = ?", f.Name, user.ID).Error
		if err == nil {
			listsByName[f.Name] = existing
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		list := models.List{UserID: user.ID, Name: f.Name, Description: f.Description}
		if err := s.db.Create(&list).Error; err != nil {
			return err
		}
		listsByName[f.Name] = list
	}

	membershipFixtures := []struct {
		List    string
		Pokemon int
	}{
		{"My Favorite Electric Types", 0},
		{"Starter Pokemon Collection", 1},
		{"Starter Pokemon Collection", 2},
		{"Starter Pokemon Collection", 3},
		{"Fire Type Masters", 1},
		{"Water Adventures", 2},
		{"Water Adventures", 5},
		{"Ghostly Encounters", 4},
	}

	for _, f := range membershipFixtures {
		list, poke := listsByName[f.List], pokemon[f.Pokemon]
		var existing models.ListPokemon
		err := s.db.First(&existing, "list_id = ? AND pokemon_id = ?", list.ID, poke.ID).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		membership := models.ListPokemon{ListID: list.ID, PokemonID: poke.ID}
		if err := s.db.Create(&membership).Error; err != nil {
			return err
		}
	}
	return nil
}

const spriteBase = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/"

func (s *Seeder) seedImages(users []models.User, pokemon []models.Pokemon) error {
	fixtures := []struct {
		User    int
		Pokemon int
		URL     string
	}{
		{0, 0, spriteBase + "25.png"},
		{1, 1, spriteBase + "6.png"},
		{2, 2, spriteBase + "9.png"},
		{0, 3, spriteBase + "3.png"},
		{3, 4, spriteBase + "94.png"},
		{1, 5, spriteBase + "149.png"},
		{2, 0, spriteBase + "25.png"},
		{0, 1, spriteBase + "6.png"},
	}

	for _, f := range fixtures {
		user, poke := users[f.User], pokemon[f.Pokemon]
		var existing models.Image
		err := s.db.First(&existing, "user_id = ? AND pokemon_id = ? AND url = ?", user.ID, poke.ID, f.URL).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		image := models.Image{UserID: user.ID, PokemonID: poke.ID, URL: f.URL}
		if err := s.db.Create(&image).Error; err != nil {
			return err
		}
	}
	return nil
}
