package vocabulary

// knownBrands are the canonical brand names recognised inside free text.
var knownBrands = []string{
	"HP", "Dell", "Lenovo", "Avigilon", "Cisco", "Apple", "Samsung", "Epson", "Axis",
	"Hikvision", "Dahua", "Acer", "Asus", "Brother", "Canon", "Xerox", "Kyocera", "Ricoh",
	"Logitech", "Ubiquiti", "Microsoft", "LG", "APC", "Fortinet", "Huawei", "Zebra",
	"Honeywell", "Panasonic", "Sony", "Toshiba", "Motorola", "Polycom", "Yealink",
	"Grandstream", "Bosch", "Hanwha", "Synology", "Aruba", "Juniper", "TP-Link", "Mikrotik",
}

// knownTypes maps a canonical equipment type to the spellings users write for it.
var knownTypes = map[string][]string{
	"Laptop":       {"laptop", "laptops", "portatil", "portatiles", "notebook", "notebooks"},
	"Computadora":  {"computadora", "computadoras", "pc", "pcs", "desktop", "desktops", "cpu", "cpus"},
	"Monitor":      {"monitor", "monitores", "pantalla", "pantallas"},
	"Impresora":    {"impresora", "impresoras", "multifuncional", "multifuncionales"},
	"Cámara":       {"camara", "camaras"},
	"Switch":       {"switch", "switches"},
	"Router":       {"router", "routers", "ruteador", "ruteadores"},
	"Teléfono":     {"telefono", "telefonos"},
	"Servidor":     {"servidor", "servidores"},
	"Proyector":    {"proyector", "proyectores"},
	"Tablet":       {"tablet", "tablets", "tableta", "tabletas"},
	"Escáner":      {"escaner", "escaneres", "scanner", "scanners"},
	"No Break":     {"nobreak", "nobreaks", "ups"},
	"Grabador":     {"nvr", "dvr", "grabador", "grabadores"},
	"Access Point": {"ap", "aps"},
}

// months maps Spanish month names, already normalized, to their number.
var months = map[string]int{
	"enero": 1, "febrero": 2, "marzo": 3, "abril": 4, "mayo": 5, "junio": 6, "julio": 7,
	"agosto": 8, "septiembre": 9, "setiembre": 9, "octubre": 10, "noviembre": 11, "diciembre": 12,
}

// stopWords can never be captured as a brand, type, model or location value.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "al", "con", "de", "del", "el", "en", "la", "las", "lo", "los", "o", "para", "por",
		"que", "se", "sin", "su", "sus", "un", "una", "unos", "unas", "y", "e", "hay", "son",
		"es", "esta", "estan", "todos", "todas", "cuantos", "cuantas", "cuanto", "cuanta",
		"inventario", "inventarios", "equipo", "equipos", "registro", "registros",
		"tipo", "marca", "modelo", "modelos", "ubicacion", "ubicado", "ubicada", "ubicados",
		"ubicadas", "entre", "desde", "hasta", "ano", "mes", "total", "factura", "oc",
	} {
		stopWords[w] = struct{}{}
	}
	for m := range months {
		stopWords[m] = struct{}{}
	}

	for _, b := range knownBrands {
		brandIndex[Normalize(b)] = b
	}
	for canonical, aliases := range knownTypes {
		typeIndex[Normalize(canonical)] = canonical
		for _, a := range aliases {
			typeIndex[a] = canonical
		}
	}
}

var (
	brandIndex = map[string]string{}
	typeIndex  = map[string]string{}
)

// LookupBrand resolves a single normalized token to a canonical brand name.
func LookupBrand(token string) (string, bool) {
	b, ok := brandIndex[token]
	return b, ok
}

// LookupType resolves a single normalized token to a canonical equipment type.
func LookupType(token string) (string, bool) {
	t, ok := typeIndex[token]
	return t, ok
}

// KnownBrands returns the canonical brand names in declaration order.
func KnownBrands() []string {
	out := make([]string, len(knownBrands))
	copy(out, knownBrands)
	return out
}

// Month resolves a normalized Spanish month name.
func Month(name string) (int, bool) {
	m, ok := months[name]
	return m, ok
}

// IsStopWord reports whether a normalized word is excluded from phrase captures.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}
