// Package arkts renders the ArkTS source fragments the architecture
// renderers assemble into scaffold files. Fragment functions are pure:
// the same schema always yields the same bytes. None of them emit the
// leading path banner, which belongs to the file plan.
package arkts
