package domain

// Category is the product category of a catalog entry
type Category string

const (
	CategoryShirts      Category = "shirts"
	CategoryPants       Category = "pants"
	CategoryShoes       Category = "shoes"
	CategoryAccessories Category = "accessories"
)

// CategoryAll selects every category in catalog lookups
const CategoryAll = "all"

// IsValid checks if the category is one of the known categories
func (c Category) IsValid() bool {
	switch c {
	case CategoryShirts,
		CategoryPants,
		CategoryShoes,
		CategoryAccessories:
		return true
	default:
		return false
	}
}

// CheckoutStep represents the current step of a checkout flow
type CheckoutStep string

const (
	CheckoutStepShipping     CheckoutStep = "shipping"
	CheckoutStepPayment      CheckoutStep = "payment"
	CheckoutStepConfirmation CheckoutStep = "confirmation"
)

func (s CheckoutStep) String() string {
	return string(s)
}

// IsValid checks if the checkout step is valid
func (s CheckoutStep) IsValid() bool {
	switch s {
	case CheckoutStepShipping,
		CheckoutStepPayment,
		CheckoutStepConfirmation:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a step transition is valid
func (s CheckoutStep) CanTransitionTo(next CheckoutStep) bool {
	switch s {
	case CheckoutStepShipping:
		return next == CheckoutStepPayment
	case CheckoutStepPayment:
		return next == CheckoutStepShipping ||
			next == CheckoutStepConfirmation
	case CheckoutStepConfirmation:
		return false // Terminal state
	default:
		return false
	}
}

// Language is a supported display language
type Language string

const (
	LanguageSlovak  Language = "sk"
	LanguageEnglish Language = "en"
)

// IsValid checks if the language is supported
func (l Language) IsValid() bool {
	return l == LanguageSlovak || l == LanguageEnglish
}
