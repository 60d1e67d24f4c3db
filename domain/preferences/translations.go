package preferences

// Key identifies a translatable UI string
type Key string

const (
	KeyProductAddToCart     Key = "product.addToCart"
	KeyProductAdded         Key = "product.added"
	KeyProductOff           Key = "product.off"
	KeyProductInStock       Key = "productDetail.inStock"
	KeyProductOutOfStock    Key = "productDetail.outOfStock"
	KeyProductSize          Key = "productDetail.size"
	KeyProductColor         Key = "productDetail.color"
	KeyProductQuantity      Key = "productDetail.quantity"
	KeyProductAddToWishlist Key = "productDetail.addToWishlist"

	KeyCartTitle         Key = "cart.title"
	KeyCartEmpty         Key = "cart.empty"
	KeyCartStartShopping Key = "cart.startShopping"
	KeyCartSubtotal      Key = "cart.subtotal"
	KeyCartShipping      Key = "cart.shipping"
	KeyCartFreeShipping  Key = "cart.freeShipping"
	KeyCartFreeAbove     Key = "cart.freeAbove"
	KeyCartTax           Key = "cart.tax"
	KeyCartTotal         Key = "cart.total"
	KeyCartCheckout      Key = "cart.proceedToCheckout"
	KeyCartRemove        Key = "cart.remove"
	KeyCartItems         Key = "cart.items"

	KeyWishlistTitle   Key = "wishlist.title"
	KeyWishlistEmpty   Key = "wishlist.empty"
	KeyWishlistExplore Key = "wishlist.explore"

	KeyCheckoutTitle           Key = "checkout.title"
	KeyCheckoutShippingAddress Key = "checkout.shippingAddress"
	KeyCheckoutOrderSummary    Key = "checkout.orderSummary"
	KeyCheckoutPlaceOrder      Key = "checkout.placeOrder"
	KeyCheckoutPaymentMethod   Key = "checkout.paymentMethod"

	KeySettingsLanguage Key = "settings.language"
	KeySettingsCurrency Key = "settings.currency"

	KeyCommonError   Key = "common.error"
	KeyCommonLoading Key = "common.loading"
)

// translations is a flat key lookup. English is the fallback language and
// must be present for every key.
var translations = map[Key]map[Language]string{
	KeyProductAddToCart:     {English: "Add to Cart", Hindi: "कार्ट में डालें", Marathi: "कार्टमध्ये जोडा"},
	KeyProductAdded:         {English: "✓ Added", Hindi: "✓ जोड़ा गया", Marathi: "✓ जोडले"},
	KeyProductOff:           {English: "OFF", Hindi: "छूट", Marathi: "सूट"},
	KeyProductInStock:       {English: "In Stock", Hindi: "स्टॉक में", Marathi: "स्टॉकमध्ये"},
	KeyProductOutOfStock:    {English: "Out of Stock", Hindi: "स्टॉक में नहीं", Marathi: "स्टॉक संपले"},
	KeyProductSize:          {English: "Size", Hindi: "आकार", Marathi: "आकार"},
	KeyProductColor:         {English: "Color", Hindi: "रंग", Marathi: "रंग"},
	KeyProductQuantity:      {English: "Quantity", Hindi: "मात्रा", Marathi: "संख्या"},
	KeyProductAddToWishlist: {English: "Add to Wishlist", Hindi: "विशलिस्ट में जोड़ें", Marathi: "विशलिस्टमध्ये जोडा"},

	KeyCartTitle:         {English: "Shopping Cart", Hindi: "शॉपिंग कार्ट", Marathi: "शॉपिंग कार्ट"},
	KeyCartEmpty:         {English: "Your cart is empty", Hindi: "आपका कार्ट खाली है", Marathi: "तुमची कार्ट रिकामी आहे"},
	KeyCartStartShopping: {English: "Start Shopping", Hindi: "खरीदारी शुरू करें", Marathi: "खरेदी सुरू करा"},
	KeyCartSubtotal:      {English: "Subtotal", Hindi: "उप-योग", Marathi: "उप-एकूण"},
	KeyCartShipping:      {English: "Shipping", Hindi: "शिपिंग", Marathi: "शिपिंग"},
	KeyCartFreeShipping:  {English: "FREE", Hindi: "मुफ्त", Marathi: "मोफत"},
	KeyCartFreeAbove:     {English: "Free shipping above", Hindi: "इससे अधिक पर मुफ्त शिपिंग", Marathi: "यापेक्षा जास्त वर मोफत शिपिंग"},
	KeyCartTax:           {English: "Tax (GST 18%)", Hindi: "कर (GST 18%)", Marathi: "कर (GST 18%)"},
	KeyCartTotal:         {English: "Total", Hindi: "कुल", Marathi: "एकूण"},
	KeyCartCheckout:      {English: "Proceed to Checkout", Hindi: "चेकआउट पर जाएँ", Marathi: "चेकआउटवर जा"},
	KeyCartRemove:        {English: "Remove", Hindi: "हटाएं", Marathi: "काढा"},
	KeyCartItems:         {English: "items", Hindi: "आइटम", Marathi: "आयटम"},

	KeyWishlistTitle:   {English: "My Wishlist", Hindi: "मेरी विशलिस्ट", Marathi: "माझी विशलिस्ट"},
	KeyWishlistEmpty:   {English: "Your wishlist is empty", Hindi: "आपकी विशलिस्ट खाली है", Marathi: "तुमची विशलिस्ट रिकामी आहे"},
	KeyWishlistExplore: {English: "Explore Products", Hindi: "उत्पाद एक्सप्लोर करें", Marathi: "उत्पादने एक्सप्लोर करा"},

	KeyCheckoutTitle:           {English: "Checkout", Hindi: "चेकआउट", Marathi: "चेकआउट"},
	KeyCheckoutShippingAddress: {English: "Shipping Address", Hindi: "शिपिंग पता", Marathi: "शिपिंग पत्ता"},
	KeyCheckoutOrderSummary:    {English: "Order Summary", Hindi: "ऑर्डर सारांश", Marathi: "ऑर्डर सारांश"},
	KeyCheckoutPlaceOrder:      {English: "Place Order", Hindi: "ऑर्डर दें", Marathi: "ऑर्डर द्या"},
	KeyCheckoutPaymentMethod:   {English: "Payment Method", Hindi: "भुगतान विधि", Marathi: "पेमेंट पद्धत"},

	KeySettingsLanguage: {English: "Language", Hindi: "भाषा", Marathi: "भाषा"},
	KeySettingsCurrency: {English: "Currency", Hindi: "मुद्रा", Marathi: "चलन"},

	KeyCommonError:   {English: "Error", Hindi: "त्रुटि", Marathi: "त्रुटी"},
	KeyCommonLoading: {English: "Loading...", Hindi: "लोड हो रहा है...", Marathi: "लोड होत आहे..."},
}

// Translate looks key up for lang, falling back to English and then to the
// key itself.
func Translate(lang Language, key Key) string {
	entry, ok := translations[key]
	if !ok {
		return string(key)
	}
	if s := entry[lang]; s != "" {
		return s
	}
	if s := entry[English]; s != "" {
		return s
	}
	return string(key)
}

// Known reports whether key has a translation entry.
func Known(key Key) bool {
	_, ok := translations[key]
	return ok
}
