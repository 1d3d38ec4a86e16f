package ampacity

import "Ampere/internal/calc/cable"

// Tabulated current-carrying capacity in amperes at 30 °C ambient (20 °C
// ground). XLPE columns are 90 °C conductor temperature, PVC columns 70 °C.

var (
	cuSizes   = []float64{1.5, 2.5, 4, 6, 10, 16, 25, 35, 50, 70, 95, 120, 150, 185, 240, 300}
	alSizes   = []float64{2.5, 4, 6, 10, 16, 25, 35, 50, 70, 95, 120, 150, 185, 240, 300}
	alD2Sizes = []float64{16, 25, 35, 50, 70, 95, 120, 150, 185, 240, 300}
)

type tableKey struct {
	material   cable.Material
	insulation cable.Insulation
	ref        Ref
	loaded     int
}

type column struct {
	sizes []float64
	amps  []float64
}

var tables = map[tableKey]column{
	{cable.Copper, cable.XLPE, A1, 2}: {cuSizes, []float64{19, 26, 35, 45, 61, 81, 106, 131, 158, 200, 241, 278, 318, 362, 424, 486}},
	{cable.Copper, cable.XLPE, A1, 3}: {cuSizes, []float64{17, 23, 31, 40, 54, 73, 95, 117, 141, 179, 216, 249, 285, 324, 380, 435}},
	{cable.Copper, cable.XLPE, A2, 2}: {cuSizes, []float64{18.5, 25, 33, 42, 57, 76, 99, 121, 145, 183, 220, 253, 290, 329, 386, 442}},
	{cable.Copper, cable.XLPE, A2, 3}: {cuSizes, []float64{16.5, 22, 30, 38, 51, 68, 89, 109, 130, 164, 197, 227, 259, 295, 346, 396}},
	{cable.Copper, cable.XLPE, B1, 2}: {cuSizes, []float64{23, 31, 42, 54, 75, 100, 133, 164, 198, 253, 306, 354, 393, 449, 528, 603}},
	{cable.Copper, cable.XLPE, B1, 3}: {cuSizes, []float64{20, 28, 37, 48, 66, 88, 117, 144, 175, 222, 269, 312, 342, 384, 450, 514}},
	{cable.Copper, cable.XLPE, B2, 2}: {cuSizes, []float64{22, 30, 40, 51, 69, 91, 119, 146, 175, 221, 265, 305, 334, 384, 459, 532}},
	{cable.Copper, cable.XLPE, B2, 3}: {cuSizes, []float64{19.5, 26, 35, 44, 60, 80, 105, 128, 154, 194, 233, 268, 300, 340, 398, 455}},
	{cable.Copper, cable.XLPE, C, 2}: {cuSizes, []float64{24, 33, 45, 58, 80, 107, 138, 171, 209, 269, 328, 382, 441, 506, 599, 693}},
	{cable.Copper, cable.XLPE, C, 3}: {cuSizes, []float64{22, 30, 40, 52, 71, 96, 119, 147, 179, 229, 278, 322, 371, 424, 500, 576}},
	{cable.Copper, cable.XLPE, D1, 2}: {cuSizes, []float64{25, 33, 43, 53, 71, 91, 116, 139, 164, 203, 239, 271, 306, 343, 395, 446}},
	{cable.Copper, cable.XLPE, D1, 3}: {cuSizes, []float64{21, 28, 36, 44, 58, 75, 96, 115, 135, 157, 197, 223, 251, 281, 324, 365}},
	{cable.Copper, cable.XLPE, D2, 2}: {cuSizes, []float64{27, 35, 46, 58, 77, 100, 129, 155, 183, 225, 270, 306, 343, 387, 448, 502}},
	{cable.Copper, cable.XLPE, D2, 3}: {cuSizes, []float64{23, 30, 39, 49, 65, 84, 107, 129, 153, 188, 226, 257, 287, 324, 375, 419}},
	{cable.Aluminium, cable.XLPE, A1, 2}: {alSizes, []float64{20, 27, 35, 48, 64, 84, 103, 125, 158, 191, 220, 253, 288, 338, 387}},
	{cable.Aluminium, cable.XLPE, A1, 3}: {alSizes, []float64{19, 25, 32, 44, 58, 76, 94, 113, 142, 171, 197, 226, 256, 300, 344}},
	{cable.Aluminium, cable.XLPE, A2, 2}: {alSizes, []float64{19.5, 26, 33, 45, 60, 78, 96, 115, 145, 175, 201, 230, 262, 307, 352}},
	{cable.Aluminium, cable.XLPE, A2, 3}: {alSizes, []float64{18, 24, 31, 41, 55, 71, 87, 104, 131, 157, 180, 206, 233, 273, 313}},
	{cable.Aluminium, cable.XLPE, B1, 2}: {alSizes, []float64{25, 33, 43, 59, 79, 105, 130, 157, 200, 242, 281, 307, 351, 412, 471}},
	{cable.Aluminium, cable.XLPE, B1, 3}: {alSizes, []float64{22, 29, 38, 52, 71, 93, 116, 140, 179, 217, 251, 267, 300, 351, 402}},
	{cable.Aluminium, cable.XLPE, B2, 2}: {alSizes, []float64{23, 31, 40, 54, 72, 94, 115, 138, 175, 210, 242, 261, 300, 358, 415}},
	{cable.Aluminium, cable.XLPE, B2, 3}: {alSizes, []float64{21, 28, 35, 48, 64, 84, 103, 124, 156, 188, 216, 240, 272, 318, 364}},
	{cable.Aluminium, cable.XLPE, C, 2}: {alSizes, []float64{26, 35, 45, 62, 84, 101, 126, 154, 198, 241, 280, 324, 371, 439, 508}},
	{cable.Aluminium, cable.XLPE, C, 3}: {alSizes, []float64{24, 32, 41, 57, 76, 90, 112, 136, 174, 211, 245, 283, 323, 382, 440}},
	{cable.Aluminium, cable.XLPE, D1, 2}: {alSizes, []float64{26, 33, 42, 55, 71, 90, 108, 128, 158, 186, 211, 238, 267, 307, 346}},
	{cable.Aluminium, cable.XLPE, D1, 3}: {alSizes, []float64{22, 28, 35, 46, 59, 75, 90, 106, 130, 154, 174, 197, 220, 253, 286}},
	{cable.Aluminium, cable.XLPE, D2, 2}: {alD2Sizes, []float64{76, 98, 117, 139, 170, 204, 233, 261, 296, 343, 386}},
	{cable.Aluminium, cable.XLPE, D2, 3}: {alD2Sizes, []float64{64, 82, 98, 117, 144, 172, 197, 220, 250, 290, 326}},
	{cable.Copper, cable.PVC, A1, 2}: {cuSizes, []float64{14.5, 19.5, 26, 34, 46, 61, 80, 99, 119, 151, 182, 210, 240, 273, 321, 367}},
	{cable.Copper, cable.PVC, A1, 3}: {cuSizes, []float64{13.5, 18, 24, 31, 42, 56, 73, 89, 108, 136, 164, 188, 216, 245, 286, 328}},
	{cable.Copper, cable.PVC, A2, 2}: {cuSizes, []float64{14, 18.5, 25, 32, 43, 57, 75, 92, 110, 139, 167, 192, 219, 248, 291, 334}},
	{cable.Copper, cable.PVC, A2, 3}: {cuSizes, []float64{13, 17.5, 23, 29, 39, 52, 68, 83, 99, 125, 150, 172, 196, 223, 261, 298}},
	{cable.Copper, cable.PVC, B1, 2}: {cuSizes, []float64{17.5, 24, 32, 41, 57, 76, 101, 125, 151, 192, 232, 269, 300, 341, 400, 458}},
	{cable.Copper, cable.PVC, B1, 3}: {cuSizes, []float64{15.5, 21, 28, 36, 50, 68, 89, 110, 134, 171, 207, 239, 262, 296, 346, 394}},
	{cable.Copper, cable.PVC, B2, 2}: {cuSizes, []float64{16.5, 23, 30, 38, 52, 69, 90, 111, 133, 168, 201, 232, 258, 294, 344, 394}},
	{cable.Copper, cable.PVC, B2, 3}: {cuSizes, []float64{15, 20, 27, 34, 46, 62, 80, 99, 118, 149, 179, 206, 225, 255, 297, 339}},
	{cable.Copper, cable.PVC, C, 2}: {cuSizes, []float64{19.5, 27, 36, 46, 63, 85, 112, 138, 168, 213, 258, 299, 344, 392, 461, 530}},
	{cable.Copper, cable.PVC, C, 3}: {cuSizes, []float64{17.5, 24, 32, 41, 57, 76, 96, 119, 144, 184, 223, 259, 299, 341, 403, 464}},
	{cable.Copper, cable.PVC, D1, 2}: {cuSizes, []float64{22, 29, 37, 46, 60, 78, 99, 119, 140, 173, 204, 231, 261, 292, 336, 379}},
	{cable.Copper, cable.PVC, D1, 3}: {cuSizes, []float64{18, 24, 30, 38, 50, 64, 82, 98, 116, 143, 169, 192, 217, 243, 280, 316}},
	{cable.Copper, cable.PVC, D2, 2}: {cuSizes, []float64{22, 28, 38, 48, 64, 83, 110, 132, 156, 192, 230, 261, 293, 331, 382, 427}},
	{cable.Copper, cable.PVC, D2, 3}: {cuSizes, []float64{19, 24, 33, 41, 54, 70, 92, 110, 130, 162, 193, 220, 246, 278, 320, 359}},
	{cable.Aluminium, cable.PVC, A1, 2}: {alSizes, []float64{15, 20, 26, 36, 48, 63, 77, 93, 118, 142, 164, 189, 215, 252, 289}},
	{cable.Aluminium, cable.PVC, A1, 3}: {alSizes, []float64{14, 18.5, 24, 32, 43, 57, 70, 84, 107, 129, 149, 170, 194, 227, 261}},
	{cable.Aluminium, cable.PVC, A2, 2}: {alSizes, []float64{14.5, 19.5, 25, 33, 44, 58, 71, 86, 108, 130, 150, 172, 195, 229, 263}},
	{cable.Aluminium, cable.PVC, A2, 3}: {alSizes, []float64{13.5, 17.5, 23, 31, 41, 53, 65, 78, 98, 118, 135, 155, 176, 207, 237}},
	{cable.Aluminium, cable.PVC, B1, 2}: {alSizes, []float64{18.5, 25, 32, 44, 60, 79, 97, 118, 150, 181, 210, 234, 266, 312, 358}},
	{cable.Aluminium, cable.PVC, B1, 3}: {alSizes, []float64{16.5, 22, 28, 39, 53, 70, 86, 104, 133, 161, 186, 204, 230, 269, 306}},
	{cable.Aluminium, cable.PVC, B2, 2}: {alSizes, []float64{17.5, 24, 30, 41, 54, 71, 86, 104, 131, 157, 181, 201, 230, 269, 308}},
	{cable.Aluminium, cable.PVC, B2, 3}: {alSizes, []float64{15.5, 21, 27, 36, 48, 62, 77, 92, 116, 139, 160, 176, 199, 232, 265}},
	{cable.Aluminium, cable.PVC, C, 2}: {alSizes, []float64{21, 28, 36, 49, 66, 83, 103, 125, 160, 195, 226, 261, 298, 352, 406}},
	{cable.Aluminium, cable.PVC, C, 3}: {alSizes, []float64{18.5, 25, 32, 44, 59, 73, 90, 110, 140, 170, 197, 227, 259, 305, 351}},
	{cable.Aluminium, cable.PVC, D1, 2}: {alSizes, []float64{22, 29, 36, 47, 61, 77, 93, 109, 135, 159, 180, 204, 228, 262, 296}},
	{cable.Aluminium, cable.PVC, D1, 3}: {alSizes, []float64{18.5, 24, 30, 39, 50, 64, 77, 91, 112, 132, 150, 169, 190, 218, 247}},
	{cable.Aluminium, cable.PVC, D2, 2}: {alD2Sizes, []float64{63, 82, 98, 117, 145, 173, 200, 224, 255, 298, 336}},
	{cable.Aluminium, cable.PVC, D2, 3}: {alD2Sizes, []float64{52, 67, 80, 95, 117, 141, 160, 181, 206, 238, 270}},
}
