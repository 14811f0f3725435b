package i18n

import "github.com/nexusshop/storefront/internal/domain"

var translations = map[domain.Language]map[string]string{
	domain.LanguageSlovak: {
		"nav.home":     "Domov",
		"nav.shop":     "Obchod",
		"nav.signIn":   "Prihlásiť sa",
		"nav.signOut":  "Odhlásiť sa",
		"nav.greeting": "Ahoj",

		"shop.title":        "Obchod",
		"shop.products":     "produktov",
		"shop.categories":   "Kategórie",
		"shop.filter":       "Filter",
		"shop.sortBy":       "Zoradiť podľa",
		"shop.featured":     "Odporúčané",
		"shop.priceLowHigh": "Cena: Od najnižšej",
		"shop.priceHighLow": "Cena: Od najvyššej",
		"shop.name":         "Názov",
		"shop.noProducts":   "V tejto kategórii sa nenašli žiadne produkty.",

		"category.all":         "Všetky produkty",
		"category.shirts":      "Tričká",
		"category.pants":       "Nohavice",
		"category.shoes":       "Topánky",
		"category.accessories": "Doplnky",

		"cart.title":             "Nákupný košík",
		"cart.empty":             "Váš košík je prázdny",
		"cart.emptyText":         "Vyzerá to, že ste ešte nepridali žiadne položky do košíka.",
		"cart.continueShopping":  "Pokračovať v nákupe",
		"cart.product":           "Produkt",
		"cart.quantity":          "Množstvo",
		"cart.price":             "Cena",
		"cart.total":             "Celkom",
		"cart.size":              "Veľkosť",
		"cart.remove":            "Odstrániť",
		"cart.orderSummary":      "Súhrn objednávky",
		"cart.subtotal":          "Medzisúčet",
		"cart.shipping":          "Doručenie",
		"cart.free":              "Zadarmo",
		"cart.freeShippingNote":  "Doprava zadarmo pri objednávkach nad 150€",
		"cart.proceedToCheckout": "Pokračovať k pokladni",
		"cart.secureCheckout":    "Bezpečná platba cez Stripe",

		"product.notFound":    "Produkt sa nenašiel",
		"product.addedToCart": "Pridané do košíka",
		"product.selectSize":  "Prosím vyberte veľkosť",

		"auth.welcome":         "Vitajte! Ako sa voláte?",
		"auth.yourName":        "Vaše meno",
		"auth.enterName":       "Zadajte vaše meno",
		"auth.continue":        "Pokračovať",
		"auth.demoNote":        "Toto je demo. Stačí zadať akékoľvek meno.",
		"auth.alreadySignedIn": "Už ste prihlásený/á.",
		"auth.backToHome":      "Späť na hlavnú stránku",

		"checkout.shipping":          "Doručenie",
		"checkout.payment":           "Platba",
		"checkout.confirmation":      "Potvrdenie",
		"checkout.shippingInfo":      "Informácie o doručení",
		"checkout.firstName":         "Krstné meno",
		"checkout.lastName":          "Priezvisko",
		"checkout.email":             "Email",
		"checkout.address":           "Adresa",
		"checkout.city":              "Mesto",
		"checkout.state":             "Kraj",
		"checkout.zipCode":           "PSČ",
		"checkout.backToCart":        "Späť do košíka",
		"checkout.continueToPayment": "Pokračovať k platbe",
		"checkout.paymentInfo":       "Platobné údaje",
		"checkout.cardNumber":        "Číslo karty",
		"checkout.nameOnCard":        "Meno na karte",
		"checkout.expiryDate":        "Dátum expirácie",
		"checkout.backToShipping":    "Späť na doručenie",
		"checkout.processing":        "Spracováva sa...",
		"checkout.pay":               "Zaplatiť",
		"checkout.demoNote":          "Toto je demo pokladňa. Žiadna skutočná platba nebude spracovaná.",
		"checkout.orderConfirmed":    "Objednávka potvrdená!",
		"checkout.thankYou":          "Ďakujeme za váš nákup. Vaša objednávka bola úspešne zadaná.",
		"checkout.orderNumber":       "Číslo objednávky",
		"checkout.confirmationEmail": "Potvrdenie bolo odoslané na",

		"error.firstNameRequired":  "Krstné meno je povinné",
		"error.lastNameRequired":   "Priezvisko je povinné",
		"error.emailRequired":      "Email je povinný",
		"error.invalidEmail":       "Neplatný email",
		"error.addressRequired":    "Adresa je povinná",
		"error.cityRequired":       "Mesto je povinné",
		"error.stateRequired":      "Kraj je povinný",
		"error.zipRequired":        "PSČ je povinné",
		"error.cardNumberRequired": "Číslo karty je povinné",
		"error.invalidCardNumber":  "Neplatné číslo karty",
		"error.cardNameRequired":   "Meno na karte je povinné",
		"error.expiryRequired":     "Dátum expirácie je povinný",
		"error.cvvRequired":        "CVV je povinné",
		"error.invalidCvv":         "Neplatné CVV",
		"error.nameRequired":       "Meno je povinné",
		"error.unknownLanguage":    "Nepodporovaný jazyk",
	},
	domain.LanguageEnglish: {
		"nav.home":     "Home",
		"nav.shop":     "Shop",
		"nav.signIn":   "Sign In",
		"nav.signOut":  "Sign Out",
		"nav.greeting": "Hey",

		"shop.title":        "Shop",
		"shop.products":     "products",
		"shop.categories":   "Categories",
		"shop.filter":       "Filter",
		"shop.sortBy":       "Sort by",
		"shop.featured":     "Featured",
		"shop.priceLowHigh": "Price: Low to High",
		"shop.priceHighLow": "Price: High to Low",
		"shop.name":         "Name",
		"shop.noProducts":   "No products found in this category.",

		"category.all":         "All Products",
		"category.shirts":      "Shirts",
		"category.pants":       "Pants",
		"category.shoes":       "Shoes",
		"category.accessories": "Accessories",

		"cart.title":             "Shopping Cart",
		"cart.empty":             "Your cart is empty",
		"cart.emptyText":         "Looks like you haven't added any items to your cart yet.",
		"cart.continueShopping":  "Continue Shopping",
		"cart.product":           "Product",
		"cart.quantity":          "Quantity",
		"cart.price":             "Price",
		"cart.total":             "Total",
		"cart.size":              "Size",
		"cart.remove":            "Remove",
		"cart.orderSummary":      "Order Summary",
		"cart.subtotal":          "Subtotal",
		"cart.shipping":          "Shipping",
		"cart.free":              "Free",
		"cart.freeShippingNote":  "Free shipping on orders over $150",
		"cart.proceedToCheckout": "Proceed to Checkout",
		"cart.secureCheckout":    "Secure checkout powered by Stripe",

		"product.notFound":    "Product not found",
		"product.addedToCart": "Added to Cart",
		"product.selectSize":  "Please select a size",

		"auth.welcome":         "Welcome! What's your name?",
		"auth.yourName":        "Your Name",
		"auth.enterName":       "Enter your name",
		"auth.continue":        "Continue",
		"auth.demoNote":        "This is a demo. Just enter any name to continue.",
		"auth.alreadySignedIn": "You're already signed in.",
		"auth.backToHome":      "Back to Home",

		"checkout.shipping":          "Shipping",
		"checkout.payment":           "Payment",
		"checkout.confirmation":      "Confirmation",
		"checkout.shippingInfo":      "Shipping Information",
		"checkout.firstName":         "First Name",
		"checkout.lastName":          "Last Name",
		"checkout.email":             "Email",
		"checkout.address":           "Address",
		"checkout.city":              "City",
		"checkout.state":             "State",
		"checkout.zipCode":           "ZIP Code",
		"checkout.backToCart":        "Back to Cart",
		"checkout.continueToPayment": "Continue to Payment",
		"checkout.paymentInfo":       "Payment Information",
		"checkout.cardNumber":        "Card Number",
		"checkout.nameOnCard":        "Name on Card",
		"checkout.expiryDate":        "Expiry Date",
		"checkout.backToShipping":    "Back to Shipping",
		"checkout.processing":        "Processing...",
		"checkout.pay":               "Pay",
		"checkout.demoNote":          "This is a demo checkout. No real payment will be processed.",
		"checkout.orderConfirmed":    "Order Confirmed!",
		"checkout.thankYou":          "Thank you for your purchase. Your order has been placed successfully.",
		"checkout.orderNumber":       "Order Number",
		"checkout.confirmationEmail": "A confirmation email has been sent to",

		"error.firstNameRequired":  "First name is required",
		"error.lastNameRequired":   "Last name is required",
		"error.emailRequired":      "Email is required",
		"error.invalidEmail":       "Invalid email",
		"error.addressRequired":    "Address is required",
		"error.cityRequired":       "City is required",
		"error.stateRequired":      "State is required",
		"error.zipRequired":        "ZIP code is required",
		"error.cardNumberRequired": "Card number is required",
		"error.invalidCardNumber":  "Invalid card number",
		"error.cardNameRequired":   "Name on card is required",
		"error.expiryRequired":     "Expiry date is required",
		"error.cvvRequired":        "CVV is required",
		"error.invalidCvv":         "Invalid CVV",
		"error.nameRequired":       "Name is required",
		"error.unknownLanguage":    "Unsupported language",
	},
}
