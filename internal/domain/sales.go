package domain

// SalesRecord representa uma linha da tabela de vendas
type SalesRecord struct {
	County string
	Amount int64 // dólares
	Source string
	Row    int
}

// SalesTable associa condado -> vendas. Registros posteriores substituem os anteriores.
type SalesTable struct {
	records map[string]SalesRecord
}

func NewSalesTable() *SalesTable {
	return &SalesTable{records: make(map[string]SalesRecord)}
}

func (t *SalesTable) Set(record SalesRecord) {
	t.records[CountyKey(record.County)] = record
}

func (t *SalesTable) Lookup(county string) (int64, bool) {
	record, ok := t.records[CountyKey(county)]
	if !ok {
		return 0, false
	}
	return record.Amount, true
}

func (t *SalesTable) Record(county string) (SalesRecord, bool) {
	record, ok := t.records[CountyKey(county)]
	return record, ok
}

func (t *SalesTable) Len() int {
	return len(t.records)
}
