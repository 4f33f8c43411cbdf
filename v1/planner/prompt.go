package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/resguardo/inventory-query/v1/vocabulary"
)

const promptTemplate = `Eres un traductor de preguntas sobre un inventario de equipos a un plan JSON.
Responde SOLO con un objeto JSON, sin texto adicional ni bloques de código.

Esquema:
{
  "intent": "list" | "count" | "group_count" | "missing" | "search",
  "filters": {
    "brand": string,            // una sola marca
    "brands": [string, ...],    // dos o más marcas; nunca junto con "brand"
    "type": string,
    "model": string,
    "serialNumber": string,
    "activeNumber": string,
    "status": "ALTA" | "BAJA" | "PROPUESTA_BAJA",
    "enabled": true | false | null,
    "location": string,
    "hasInvoice": true | false,
    "hasPurchaseOrder": true | false,
    "dateField": "createdAt" | "updatedAt" | "receptionDate",
    "dateFrom": "YYYY-MM-DD",
    "dateTo": "YYYY-MM-DD"
  },
  "missing": {"kind": "field" | "relation", "field": %s},
  "groupBy": %s,
  "semantic": {"query": string | null, "topK": number},
  "sort": [{"field": "createdAt" | "updatedAt" | "receptionDate", "dir": "asc" | "desc"}]
}

Reglas:
- "cuántos", "total", "cantidad" => intent "count".
- "por marca", "agrupado por tipo", gráficas o distribuciones => intent "group_count" con "groupBy".
- "modelos de <marcas>" => intent "group_count", groupBy "model" y las marcas mencionadas.
- Una sola marca va en "brand"; dos o más marcas van en "brands".
- "sin ubicación", "sin factura", "sin serie"... => intent "missing" con "missing".
- "buscar", "parecidos", "similares" => intent "search" con semantic.query.
- Omite los filtros que la pregunta no menciona. "enabled" es true salvo que pidan eliminados.
- Las fechas sin año usan el año actual. Hoy es %s.

Marcas conocidas (ejemplos): %s.`

// systemPrompt renders the planner instructions for the given day.
func systemPrompt(today time.Time) string {
	missing := quoteAll(vocabulary.MissingFields)
	groups := quoteAll(vocabulary.GroupDimensions)
	brands := vocabulary.KnownBrands()
	if len(brands) > 15 {
		brands = brands[:15]
	}
	return fmt.Sprintf(promptTemplate, missing, groups, today.Format("2006-01-02"), strings.Join(brands, ", "))
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return strings.Join(quoted, " | ")
}
