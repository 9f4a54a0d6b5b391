package sector

type Sector struct {
	ID              int
	Name            *string
	IsRotating      bool
	ExtrasNovedadID *int
	WorkedNovedadID *int

	// DTO
	ExtrasNovedadCode *string
	ExtrasNovedadDesc *string
	WorkedNovedadCode *string
	WorkedNovedadDesc *string
}
