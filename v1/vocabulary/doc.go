// Package vocabulary holds the closed sets the query pipeline is allowed to speak.
//
// Everything user text can reach in SQL passes through one of these tables: date
// fields, sort fields, group dimensions and missing-data fields all resolve to a
// fixed, alias-qualified column expression here, never to a caller-supplied string.
// The package also carries the Spanish word lists the heuristic planner matches
// against (brands, equipment types, status tokens, month names, stop words) and the
// text normalization used on both sides of those comparisons.
//
// # Physical schema
//
// The relational store is addressed through a fixed join topology rooted at the
// inventory record:
//
//	inventories i
//	  JOIN models m           ON m.id = i.model_id
//	  JOIN brands b           ON b.id = m.brand_id
//	  JOIN types t            ON t.id = m.type_id
//	  LEFT JOIN locations l   ON l.id = i.location_id
//	  LEFT JOIN invoices inv  ON inv.id = i.invoice_id
//	  LEFT JOIN purchase_orders po ON po.id = i.purchase_order_id
//
// Model, brand and type are mandatory; location, invoice and purchase order are
// optional relations and may be absent on a record.
package vocabulary
