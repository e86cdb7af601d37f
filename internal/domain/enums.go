package domain

// Category is the closed set of blog categories.
type Category string

const (
	CategoryHermeticism        Category = "Hermeticism"
	CategoryAlchemy            Category = "Alchemy"
	CategoryTarot              Category = "Tarot"
	CategoryAstrology          Category = "Astrology"
	CategoryMysticism          Category = "Mysticism"
	CategorySacredGeometry     Category = "Sacred Geometry"
	CategoryEsotericPhilosophy Category = "Esoteric Philosophy"

	// CategoryAll is the search sentinel meaning "any category".
	CategoryAll Category = "_all"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryHermeticism, CategoryAlchemy, CategoryTarot, CategoryAstrology,
		CategoryMysticism, CategorySacredGeometry, CategoryEsotericPhilosophy,
	}
}

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryHermeticism, CategoryAlchemy, CategoryTarot, CategoryAstrology,
		CategoryMysticism, CategorySacredGeometry, CategoryEsotericPhilosophy:
		return true
	}
	return false
}

// FamiliarRace is the animal form of a witch assistant.
type FamiliarRace string

const (
	FamiliarBat    FamiliarRace = "bat"
	FamiliarToad   FamiliarRace = "toad"
	FamiliarMoth   FamiliarRace = "moth"
	FamiliarBeetle FamiliarRace = "beetle"
	FamiliarCat    FamiliarRace = "cat"
	FamiliarDog    FamiliarRace = "dog"
	FamiliarGoat   FamiliarRace = "goat"
)

func (r FamiliarRace) String() string { return string(r) }

func (r FamiliarRace) IsValid() bool {
	switch r {
	case FamiliarBat, FamiliarToad, FamiliarMoth, FamiliarBeetle, FamiliarCat, FamiliarDog, FamiliarGoat:
		return true
	}
	return false
}

// HeadAccessory is worn on the familiar's head.
type HeadAccessory string

const (
	HeadWitchHat     HeadAccessory = "witch_hat"
	HeadWizardHat    HeadAccessory = "wizard_hat"
	HeadRoundGlasses HeadAccessory = "round_glasses"
)

func (a HeadAccessory) IsValid() bool {
	switch a {
	case HeadWitchHat, HeadWizardHat, HeadRoundGlasses:
		return true
	}
	return false
}

// HandAccessory is held by the familiar.
type HandAccessory string

const (
	HandMagicWand   HandAccessory = "magic_wand"
	HandWitchBroom  HandAccessory = "witch_broom"
	HandWhiteCandle HandAccessory = "white_candle"
	HandSpellbook   HandAccessory = "spellbook"
	HandDagger      HandAccessory = "dagger"
)

func (a HandAccessory) IsValid() bool {
	switch a {
	case HandMagicWand, HandWitchBroom, HandWhiteCandle, HandSpellbook, HandDagger:
		return true
	}
	return false
}

// BodyAccessory is worn on the familiar's body; several may be combined.
type BodyAccessory string

const (
	BodyMagicCloak     BodyAccessory = "magic_cloak"
	BodyHerbPouch      BodyAccessory = "herb_pouch"
	BodyAmuletNecklace BodyAccessory = "amulet_necklace"
)

func (a BodyAccessory) IsValid() bool {
	switch a {
	case BodyMagicCloak, BodyHerbPouch, BodyAmuletNecklace:
		return true
	}
	return false
}

// PaymentStatus is the provider-reported state of a payment intent.
// Unknown values are passed through untouched.
type PaymentStatus string

const (
	PaymentSucceeded             PaymentStatus = "succeeded"
	PaymentProcessing            PaymentStatus = "processing"
	PaymentRequiresPaymentMethod PaymentStatus = "requires_payment_method"
	PaymentRequiresConfirmation  PaymentStatus = "requires_confirmation"
	PaymentRequiresAction        PaymentStatus = "requires_action"
	PaymentCanceled              PaymentStatus = "canceled"
)

func (s PaymentStatus) String() string { return string(s) }
