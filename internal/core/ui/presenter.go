// Package ui 組裝回應附帶的宣告式 UI 描述
// 描述為 card / table 兩種帶型別的變體，每次調用重新建構，不會被保存
package ui

// 描述類型
const (
	TypeCard  = "card"
	TypeTable = "table"
)

// CardPayload 卡片內容
type CardPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// TableColumn 表格欄位定義
type TableColumn struct {
	Key     string `json:"key"`               // 對應列資料的鍵
	Header  string `json:"header"`            // 顯示標題
	Width   int    `json:"width,omitempty"`   // 相對寬度
	AsImage bool   `json:"asImage,omitempty"` // 以圖片呈現
}

// TablePayload 表格內容，Rows 以欄位鍵取值
type TablePayload struct {
	Columns []TableColumn       `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

// Descriptor 單一 UI 元件描述
// Type 決定哪個 payload 欄位有值；Children 為巢狀子元件
type Descriptor struct {
	Type     string        `json:"type"`
	Card     *CardPayload  `json:"card,omitempty"`
	Table    *TablePayload `json:"table,omitempty"`
	Children []Descriptor  `json:"children,omitempty"`
}

// Card 建立單一卡片描述
func Card(title, content string) Descriptor {
	return Descriptor{
		Type: TypeCard,
		Card: &CardPayload{
			Title:   title,
			Content: content,
		},
	}
}

// Table 建立單一表格描述
// 空的欄位定義是允許的，產生零欄表格
func Table(columns []TableColumn, rows []map[string]string) Descriptor {
	if columns == nil {
		columns = []TableColumn{}
	}
	if rows == nil {
		rows = []map[string]string{}
	}
	return Descriptor{
		Type: TypeTable,
		Table: &TablePayload{
			Columns: columns,
			Rows:    rows,
		},
	}
}

// CardWithTable 建立帶一個表格子元件的卡片描述
func CardWithTable(title, content string, columns []TableColumn, rows []map[string]string) Descriptor {
	card := Card(title, content)
	card.Children = []Descriptor{Table(columns, rows)}
	return card
}
