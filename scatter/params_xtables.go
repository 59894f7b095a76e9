package scatter

// xtablesParams holds the five-Gaussian electron scattering-factor
// parameterization of International Tables for Crystallography Vol. C,
// table 4.3.2.3, as (a, b) pairs: f(s) = sum a*exp(-b*s^2).
//
// The table covers elements commonly encountered in electron-diffraction
// PDF studies; extend as needed. It is populated once and treated as
// read-only process-wide.
var xtablesParams = map[string][5][2]float64{
	"H":  {{0.0349, 0.5347}, {0.1201, 3.5867}, {0.1970, 12.3471}, {0.0573, 18.9525}, {0.1195, 38.6269}},
	"C":  {{0.0893, 0.2465}, {0.2563, 1.7100}, {0.7570, 6.4094}, {1.0487, 18.6113}, {0.3575, 50.2523}},
	"N":  {{0.1022, 0.2451}, {0.3219, 1.7481}, {0.7982, 6.1925}, {0.8197, 17.3894}, {0.1715, 48.1431}},
	"O":  {{0.0974, 0.2067}, {0.2921, 1.3815}, {0.6910, 4.6943}, {0.6990, 12.7105}, {0.2039, 32.4726}},
	"Na": {{0.2142, 0.3334}, {0.6853, 2.3446}, {1.5430, 10.0830}, {2.0006, 48.3037}, {1.3912, 138.2700}},
	"Mg": {{0.2314, 0.3278}, {0.6866, 2.2720}, {0.9677, 10.9241}, {2.1882, 39.2898}, {1.1339, 101.9748}},
	"Al": {{0.2390, 0.3138}, {0.6573, 2.1063}, {1.2011, 10.4163}, {2.5586, 34.4552}, {1.2312, 98.5344}},
	"Si": {{0.2519, 0.3075}, {0.6372, 2.0174}, {1.3795, 9.6746}, {2.5082, 29.3799}, {1.0500, 80.4739}},
	"P":  {{0.2548, 0.2908}, {0.6106, 1.8740}, {1.4541, 8.5176}, {2.3204, 24.3434}, {0.8739, 63.2996}},
	"S":  {{0.2497, 0.2681}, {0.5628, 1.6711}, {1.3899, 7.0267}, {2.1865, 19.5377}, {0.7715, 50.3888}},
	"Ca": {{0.4054, 0.3499}, {1.3880, 3.0991}, {2.1602, 11.9608}, {3.7532, 53.9353}, {2.2063, 142.3892}},
	"Ti": {{0.3825, 0.3040}, {1.2598, 2.4863}, {2.0008, 9.2783}, {3.0617, 39.0751}, {2.0694, 109.4583}},
	"Fe": {{0.3946, 0.2717}, {1.2725, 2.0443}, {1.7031, 7.6007}, {2.3140, 29.9714}, {1.4795, 86.2265}},
	"Ni": {{0.3860, 0.2478}, {1.1765, 1.7660}, {1.5451, 6.3107}, {2.0730, 25.2204}, {1.3814, 74.3146}},
	"Cu": {{0.4314, 0.2694}, {1.3208, 1.9223}, {1.5236, 7.3474}, {1.4671, 28.9892}, {0.8562, 90.6246}},
	"Zn": {{0.4288, 0.2593}, {1.2646, 1.7998}, {1.4472, 6.7500}, {1.8294, 25.5860}, {1.0934, 73.5284}},
}
