package profile

// staticCatalog is a small, hand-built reference Catalog covering the
// handful of messages this repo's tests, examples, and cmd/fitctl
// exercise. It is not a substitute for a real documented+undocumented
// profile loader (spec §1 names that loader out of scope); it exists so
// the module runs end to end without one.
type staticCatalog struct {
	messages []Message
	byNumber map[uint16]Message
	byName   map[string]Message
	types    map[string]TypeDef
	baseInfo []BaseTypeInfo
}

// Static returns the built-in reference Catalog.
func Static() Catalog {
	messages := []Message{
		{
			Name:   "file_id",
			Number: 0,
			Source: Documented,
			Fields: []Field{
				{Number: 0, Name: "type", TypeName: "enum"},
				{Number: 1, Name: "manufacturer", TypeName: "uint16"},
				{Number: 2, Name: "product", TypeName: "uint16"},
				{Number: 3, Name: "serial_number", TypeName: "uint32z"},
				{Number: 4, Name: "time_created", TypeName: "uint32"},
				{Number: 5, Name: "number", TypeName: "uint16"},
			},
		},
		{
			Name:   "file_creator",
			Number: 49,
			Source: Documented,
			Fields: []Field{
				{Number: 0, Name: "software_version", TypeName: "uint16"},
				{Number: 1, Name: "hardware_version", TypeName: "uint8"},
			},
		},
		{
			Name:   "device_info",
			Number: 23,
			Source: Documented,
			Fields: []Field{
				{Number: 253, Name: "timestamp", TypeName: "uint32"},
				{Number: 0, Name: "device_index", TypeName: "uint8"},
				{Number: 1, Name: "device_type", TypeName: "uint8"},
				{Number: 2, Name: "manufacturer", TypeName: "uint16"},
				{Number: 3, Name: "serial_number", TypeName: "uint32z"},
				{Number: 4, Name: "product", TypeName: "uint16"},
				{Number: 5, Name: "software_version", TypeName: "uint16"},
			},
		},
		{
			Name:   "record",
			Number: 20,
			Source: Documented,
			Fields: []Field{
				{Number: 253, Name: "timestamp", TypeName: "uint32"},
				{Number: 0, Name: "position_lat", TypeName: "sint32"},
				{Number: 1, Name: "position_long", TypeName: "sint32"},
				{Number: 2, Name: "altitude", TypeName: "uint16"},
				{Number: 3, Name: "heart_rate", TypeName: "uint8"},
				{Number: 4, Name: "cadence", TypeName: "uint8"},
				{Number: 5, Name: "distance", TypeName: "uint32"},
				{Number: 6, Name: "speed", TypeName: "uint16"},
			},
		},
	}

	byNumber := make(map[uint16]Message, len(messages))
	byName := make(map[string]Message, len(messages))
	for _, m := range messages {
		byNumber[m.Number] = m
		byName[m.Name] = m
	}

	return &staticCatalog{
		messages: messages,
		byNumber: byNumber,
		byName:   byName,
		types:    map[string]TypeDef{},
		baseInfo: staticBaseTypeInfo(),
	}
}

func (c *staticCatalog) Messages() []Message          { return c.messages }
func (c *staticCatalog) Types() map[string]TypeDef    { return c.types }
func (c *staticCatalog) BaseTypes() []BaseTypeInfo    { return c.baseInfo }
func (c *staticCatalog) ByNumber(n uint16) (Message, bool) {
	m, ok := c.byNumber[n]
	return m, ok
}

func (c *staticCatalog) ByName(name string) (Message, bool) {
	m, ok := c.byName[name]
	return m, ok
}

func staticBaseTypeInfo() []BaseTypeInfo {
	return []BaseTypeInfo{
		{Number: 0, Name: "enum", ContainerType: "uint8", WidthBytes: 1, UndefSentinel: 0xFF},
		{Number: 1, Name: "sint8", ContainerType: "int8", WidthBytes: 1, UndefSentinel: 0x7F},
		{Number: 2, Name: "uint8", ContainerType: "uint8", WidthBytes: 1, UndefSentinel: 0xFF},
		{Number: 3, Name: "sint16", ContainerType: "int16", EndianCapable: true, WidthBytes: 2, UndefSentinel: 0x7FFF},
		{Number: 4, Name: "uint16", ContainerType: "uint16", EndianCapable: true, WidthBytes: 2, UndefSentinel: 0xFFFF},
		{Number: 5, Name: "sint32", ContainerType: "int32", EndianCapable: true, WidthBytes: 4, UndefSentinel: 0x7FFFFFFF},
		{Number: 6, Name: "uint32", ContainerType: "uint32", EndianCapable: true, WidthBytes: 4, UndefSentinel: 0xFFFFFFFF},
		{Number: 7, Name: "string", ContainerType: "string", WidthBytes: 1, UndefSentinel: 0},
		{Number: 8, Name: "float32", ContainerType: "float32", EndianCapable: true, WidthBytes: 4, UndefSentinel: 0xFFFFFFFF},
		{Number: 9, Name: "float64", ContainerType: "float64", EndianCapable: true, WidthBytes: 8, UndefSentinel: 0xFFFFFFFFFFFFFFFF},
		{Number: 10, Name: "uint8z", ContainerType: "uint8", WidthBytes: 1, UndefSentinel: 0},
		{Number: 11, Name: "uint16z", ContainerType: "uint16", EndianCapable: true, WidthBytes: 2, UndefSentinel: 0},
		{Number: 12, Name: "uint32z", ContainerType: "uint32", EndianCapable: true, WidthBytes: 4, UndefSentinel: 0},
		{Number: 13, Name: "byte", ContainerType: "uint8", WidthBytes: 1, UndefSentinel: 0xFF},
		{Number: 14, Name: "sint64", ContainerType: "int64", EndianCapable: true, WidthBytes: 8, UndefSentinel: 0x7FFFFFFFFFFFFFFF},
		{Number: 15, Name: "uint64", ContainerType: "uint64", EndianCapable: true, WidthBytes: 8, UndefSentinel: 0xFFFFFFFFFFFFFFFF},
		{Number: 16, Name: "uint64z", ContainerType: "uint64", EndianCapable: true, WidthBytes: 8, UndefSentinel: 0},
	}
}
