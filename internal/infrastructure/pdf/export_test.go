package pdf

// FormatMoney expone formatMoney para las pruebas externas.
var FormatMoney = formatMoney
