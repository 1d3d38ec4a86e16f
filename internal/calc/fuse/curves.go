package fuse

// Diazed gG D2/D3/D4, digitised manufacturer curves (A, s).
var diazedCurves = map[float64]Curve{
	2: {
		{3.7646, 3485.2}, {3.8537, 1944.7}, {3.9, 1382.9}, {3.9916, 573.7}, {4.1814, 320.1},
		{4.24, 187.07}, {4.3195, 70.74}, {4.4209, 49.76}, {4.4622, 22.644}, {4.5248, 17.964},
		{4.567, 14.12}, {4.6526, 10.996}, {4.696, 7.248}, {4.7571, 4.832}, {4.784, 3.2382},
		{4.8512, 2.2151}, {4.9421, 1.6623}, {4.9651, 1.1584}, {5.0817, 0.7025}, {5.1631, 0.5645},
		{5.5385, 0.32244}, {5.7072, 0.2513}, {6.082, 0.20218}, {6.4097, 0.16566}, {6.6832, 0.14551},
		{7.0811, 0.121}, {7.4364, 0.1014}, {8.1485, 0.08329}, {8.789, 0.06872}, {9.942, 0.05346},
		{10.732, 0.04406}, {11.988, 0.035124}, {12.862, 0.029861}, {13.536, 0.025988}, {14.456, 0.022544},
		{15.487, 0.019323}, {16.682, 0.016205}, {17.638, 0.01447}, {18.476, 0.01262}, {20.296, 0.010437},
		{21.635, 0.008958}, {23.196, 0.007513}, {24.763, 0.006699}, {27.416, 0.005187}, {29.861, 0.004401},
		{30.364, 0.0041533},
	},
	4: {
		{7.4639, 3526.1}, {7.5518, 2634}, {7.8216, 1856}, {7.96, 1487}, {8.1485, 1110.7},
		{8.2444, 859.3}, {8.3904, 619.8}, {8.539, 479.4}, {8.69, 366.6}, {8.844, 267.53},
		{9.001, 216.84}, {9.322, 156.41}, {9.487, 102.76}, {9.769, 63.69}, {10, 45.94},
		{10.418, 23.348}, {10.479, 19.147}, {10.602, 14.986}, {10.79, 11.729}, {10.981, 9.507},
		{11.176, 8.074}, {11.307, 6.469}, {11.507, 5.063}, {11.78, 3.6946}, {11.918, 2.9599},
		{12.059, 2.211}, {12.272, 1.6135}, {12.417, 1.3544}, {12.563, 1.0851}, {12.711, 0.9003},
		{12.936, 0.6804}, {13.165, 0.5515}, {13.476, 0.41197}, {14.122, 0.315}, {14.456, 0.26135},
		{14.973, 0.21939}, {15.508, 0.17992}, {16.062, 0.14927}, {16.538, 0.12531}, {17.433, 0.10519},
		{18.161, 0.08933}, {18.483, 0.07587}, {20.06, 0.06295}, {20.899, 0.05472}, {22.029, 0.04488},
		{23.356, 0.038561}, {24.908, 0.033134}, {26.409, 0.028804}, {28.164, 0.02475}, {30.036, 0.021516},
		{32.032, 0.018062}, {33.962, 0.01552}, {35.589, 0.01365}, {37.513, 0.011867}, {40.954, 0.009961},
		{42.916, 0.008968}, {44.71, 0.007617}, {49.385, 0.006394}, {50.554, 0.005961}, {52.36, 0.005182},
		{56.168, 0.004505}, {58.859, 0.0041519},
	},
	6: {
		{11.046, 3326.3}, {11.176, 2727.8}, {11.307, 2211}, {11.44, 1856}, {11.643, 1370.3},
		{11.849, 1035.6}, {12.059, 664.7}, {12.489, 476.7}, {12.711, 353.99}, {12.898, 275.44},
		{13.165, 197.52}, {13.398, 148.41}, {13.635, 110.21}, {13.836, 82.33}, {13.917, 71.57},
		{14.081, 58.35}, {14.33, 47.3}, {14.499, 42.582}, {14.627, 31.439}, {14.842, 23.484},
		{15.149, 18.167}, {15.327, 16.261}, {15.599, 12.876}, {15.736, 11.661}, {15.875, 9.073},
		{16.203, 7.185}, {16.442, 4.946}, {16.587, 3.9625}, {16.831, 3.2119}, {17.029, 2.7598},
		{17.331, 2.1226}, {17.484, 1.7714}, {17.845, 1.5399}, {17.95, 1.3703}, {18.429, 1.0296},
		{18.7, 0.8795}, {19.312, 0.657}, {19.943, 0.5451}, {20.296, 0.5024}, {20.899, 0.40482},
		{21.394, 0.35399}, {21.709, 0.32432}, {22.288, 0.28693}, {22.616, 0.26288}, {23.287, 0.22721},
		{24.19, 0.19296}, {25.349, 0.17171}, {25.798, 0.15015}, {26.564, 0.13677}, {28.082, 0.11481},
		{29.17, 0.10276}, {30.389, 0.08986}, {31.567, 0.07766}, {32.983, 0.06992}, {34.362, 0.06295},
		{36.008, 0.05602}, {37.513, 0.04985}, {39.196, 0.042582}, {40.954, 0.039472}, {42.541, 0.035124},
		{44.972, 0.030714}, {47.265, 0.027014}, {48.81, 0.02475}, {51.149, 0.022024}, {54.072, 0.019599},
		{56.497, 0.01744}, {59.552, 0.015886}, {60.962, 0.014054}, {63.883, 0.012876}, {67.533, 0.011458},
		{70.976, 0.010437}, {73.512, 0.009288}, {78.628, 0.007934}, {81.675, 0.007398}, {85.59, 0.006699},
		{89.69, 0.005996}, {94.26, 0.005305}, {98.78, 0.004804}, {103.21, 0.0042998}, {105.34, 0.0041277},
	},
	10: {
		{17.029, 3485.2}, {17.4, 2724.3}, {17.659, 2317.5}, {18.055, 1990.6}, {18.525, 1480.1},
		{19.009, 1169.8}, {19.578, 884.7}, {20.238, 684}, {20.691, 532.8}, {21.231, 427.34},
		{21.706, 355.6}, {22.11, 274.93}, {22.356, 237.35}, {23.084, 184.16}, {23.626, 147.19},
		{23.889, 118.93}, {24.475, 105.19}, {24.969, 83.57}, {25.433, 71.09}, {26.002, 58.73},
		{26.486, 49.59}, {26.978, 42.498}, {27.581, 33.344}, {28.198, 27.141}, {28.495, 23.622},
		{29.365, 19.641}, {30.132, 16.956}, {30.927, 13.492}, {31.611, 12.003}, {32.198, 10.286},
		{33.162, 8.311}, {34.28, 6.865}, {35.047, 5.84}, {35.698, 5.042}, {36.362, 4.352},
		{37.733, 3.6517}, {38.571, 3.1729}, {39.872, 2.6794}, {40.914, 2.3473}, {41.923, 2.135},
		{42.606, 1.8282}, {43.399, 1.5899}, {44.533, 1.4135}, {46.037, 1.2194}, {47.587, 1.0534},
		{49.192, 0.9161}, {50.554, 0.8394}, {52.18, 0.7294}, {53.741, 0.6581}, {55.349, 0.5851},
		{57.005, 0.5279}, {57.498, 0.5024}, {59.803, 0.436}, {60.467, 0.39922}, {63.435, 0.35233},
		{65.395, 0.2937}, {67.536, 0.25874}, {70.071, 0.22835}, {72.168, 0.20152}, {75.252, 0.17577},
		{77.975, 0.15241}, {79.718, 0.13451}, {81.802, 0.11871}, {85.59, 0.10519}, {90.74, 0.08137},
		{93.75, 0.07148}, {96.2, 0.06402}, {100.18, 0.05567}, {103.21, 0.0487}, {107.45, 0.042417},
		{111.07, 0.036618}, {114.4, 0.033037}, {118.77, 0.02847}, {123.15, 0.024621}, {127.77, 0.020488},
		{135.08, 0.017038}, {138.05, 0.015724}, {143.23, 0.013181}, {147.52, 0.011892}, {153.63, 0.010196},
		{157.63, 0.008994}, {162.35, 0.007996}, {169.07, 0.006954}, {176.79, 0.006102}, {178.02, 0.005496},
		{184.02, 0.004851}, {189.53, 0.0042808}, {193.05, 0.0040661},
	},
	16: {
		{22.55, 3567.5}, {23.28, 2953.7}, {24.066, 2386.6}, {24.475, 2037.6}, {25.34, 1593},
		{25.433, 1385.3}, {26.255, 1163.8}, {27.278, 891.3}, {28.094, 664.2}, {29.042, 548.7},
		{30.021, 440.1}, {30.243, 366.21}, {31.033, 274.93}, {32.08, 233.88}, {33.177, 188.51},
		{34.154, 149.37}, {35.589, 107.67}, {36.229, 87.34}, {37.294, 75.87}, {38.147, 60.92},
		{39, 52.6}, {40.007, 43.334}, {41.065, 34.592}, {42.138, 29.427}, {42.916, 24.75},
		{44.206, 20.079}, {45.361, 16.832}, {46.205, 14.746}, {47.238, 12.544}, {48.831, 9.698},
		{50.554, 8.074}, {51.796, 6.967}, {53.346, 5.671}, {54.74, 5.192}, {56.168, 4.72},
		{57.639, 4.0144}, {59.583, 3.3899}, {61.14, 2.9698}, {63.139, 2.7598}, {65.333, 2.3473},
		{66.303, 2.0716}, {69.335, 1.7714}, {70.33, 1.6017}, {72.435, 1.4135}, {74.877, 1.2475},
		{77.118, 1.1338}, {78.858, 1.0601}, {80.902, 0.9716}, {83.323, 0.8575}, {85.5, 0.7294},
		{87.73, 0.6827}, {90.74, 0.6055}, {93.41, 0.5476}, {96.2, 0.4833}, {100.55, 0.4234},
		{104.42, 0.36234}, {107.45, 0.33465}, {111.89, 0.29752}, {116.09, 0.26646}, {119.57, 0.2369},
		{121.58, 0.22196}, {125.9, 0.19425}, {129.67, 0.17525}, {133.05, 0.16164}, {136.53, 0.14371},
		{139.9, 0.13283}, {143.76, 0.11958}, {146.43, 0.11029}, {153.05, 0.09878}, {156.48, 0.08978},
		{160.99, 0.07949}, {166.59, 0.07148}, {172.21, 0.06449}, {179.34, 0.05609}, {183.35, 0.05097},
		{187.44, 0.04757}, {192.34, 0.043045}, {201.07, 0.036803}, {206.29, 0.033526}, {210.91, 0.03115},
		{218.82, 0.02729}, {222.89, 0.025356}, {231.38, 0.022024}, {237.31, 0.020189}, {245.31, 0.017817},
		{253.58, 0.016075}, {259.25, 0.014718}, {269.39, 0.013181}, {278.05, 0.011805}, {284.27, 0.010808},
		{293.86, 0.009331}, {301.54, 0.008606}, {309.99, 0.008074}, {318.67, 0.007214}, {329.42, 0.006414},
		{338.03, 0.005829}, {348.14, 0.005298}, {356.72, 0.004832}, {361.21, 0.00454}, {370.65, 0.0041874},
	},
	20: {
		{30.212, 3567.5}, {30.934, 2955.3}, {31.66, 2524.8}, {32.409, 2037.6}, {33.319, 1711.2},
		{33.944, 1382.9}, {35.175, 1163.8}, {36.432, 879.5}, {37.074, 764.5}, {37.594, 623.6},
		{39.081, 502.4}, {40.119, 442.7}, {40.872, 361.06}, {42.417, 286.93}, {43.213, 256.3},
		{44.024, 211}, {45.501, 163.88}, {47.199, 129.16}, {48.308, 104.38}, {49.385, 91.44},
		{50.839, 75.48}, {51.552, 62.72}, {52.976, 52.23}, {54.002, 45.35}, {55.271, 37.685},
		{56.569, 30.175}, {58.167, 23.938}, {60.253, 19.147}, {61.786, 16.224}, {63.531, 13.481},
		{66.165, 10.936}, {67.798, 9.394}, {70.151, 7.888}, {71.351, 7.181}, {73.367, 6.25},
		{75.791, 5.29}, {78.858, 4.612}, {80.725, 4.2006}, {82.397, 3.7208}, {86.31, 3.0917},
		{89.58, 2.6907}, {91.81, 2.5138}, {94.27, 2.2566}, {97.84, 1.9458}, {100.82, 1.8132},
		{103.45, 1.6019}, {106.37, 1.4334}, {111.94, 1.2475}, {116.02, 1.0851}, {119.46, 0.9625},
		{123.41, 0.8455}, {128.08, 0.7427}, {133.51, 0.6494}, {136.68, 0.573}, {141.85, 0.5127},
		{147.22, 0.4504}, {153.63, 0.38862}, {159.32, 0.33799}, {163.06, 0.29689}, {167.66, 0.26814},
		{172.4, 0.24899}, {176.79, 0.23257}, {179.76, 0.21272}, {188.3, 0.18513}, {194.52, 0.16875},
		{200.02, 0.15241}, {203.44, 0.13918}, {209.52, 0.12547}, {215.44, 0.11437}, {223.59, 0.1014},
		{229.91, 0.0899}, {234.1, 0.08329}, {241.96, 0.0747}, {249.95, 0.06622}, {259.41, 0.05763},
		{269.39, 0.04985}, {275.55, 0.04658}, {283.34, 0.041294}, {295.43, 0.035607}, {303.77, 0.032759},
		{309.99, 0.030535}, {318.21, 0.02722}, {328.72, 0.02391}, {342.75, 0.021795}, {350.8, 0.019684},
		{356.72, 0.018274}, {369.19, 0.015908}, {381.38, 0.014103}, {392.16, 0.012737}, {403.23, 0.011397},
		{410.49, 0.010936}, {424.36, 0.009919}, {434.33, 0.009042}, {440.42, 0.008474}, {452.87, 0.007583},
		{472.37, 0.006545}, {483.28, 0.005905}, {494.63, 0.005383}, {508.61, 0.004862}, {530.31, 0.00435},
	},
	35: {
		{49.966, 3567.5}, {51.194, 3038.5}, {52.275, 2706.4}, {53.132, 2366.3}, {54.231, 2037.6},
		{55.399, 1664.3}, {57.096, 1382.9}, {58.859, 1163.8}, {60.508, 890.7}, {61.679, 782.7},
		{63.091, 635.2}, {64.722, 542.7}, {66.165, 447}, {67.798, 369.51}, {69.552, 323.08},
		{71.021, 274.74}, {72.017, 246.98}, {73.708, 207.13}, {75.252, 175.77}, {76.498, 151.88},
		{78.113, 132.18}, {80.725, 100.39}, {82.397, 84.35}, {84.529, 69.44}, {86.31, 61.28},
		{89.37, 50.92}, {91.26, 42.903}, {93.19, 37.511}, {95.37, 31.752}, {98.07, 26.628},
		{99.91, 23.068}, {103.21, 20.535}, {105.39, 17.964}, {107.36, 15.562}, {110.14, 13.233},
		{114.67, 12.006}, {117.81, 10.163}, {121.14, 8.764}, {125.14, 7.662}, {128.9, 7.019},
		{130.78, 6.164}, {135.42, 5.439}, {140.54, 4.734}, {144.9, 4.1037}, {147.57, 3.6695},
		{152.44, 3.2084}, {156.02, 2.8709}, {161.18, 2.5809}, {164.8, 2.3992}, {170.02, 2.0192},
		{176.04, 1.7251}, {180.17, 1.5871}, {187.44, 1.4358}, {190.5, 1.2591}, {197.25, 1.1214},
		{203.44, 1.0117}, {208.55, 0.9021}, {214.44, 0.811}, {220.5, 0.7392}, {225.68, 0.6707},
		{234.1, 0.6055}, {240.28, 0.5321}, {247.07, 0.4739}, {252.87, 0.436}, {259.41, 0.39931},
		{269.39, 0.36234}, {274.28, 0.3227}, {278.77, 0.30526}, {286.65, 0.27569}, {294.74, 0.25014},
		{306.39, 0.21684}, {313.81, 0.19753}, {320.44, 0.18173}, {329.49, 0.16413}, {340.37, 0.14686},
		{352.57, 0.12977}, {359.04, 0.11869}, {368.33, 0.1062}, {380.5, 0.09771}, {389.43, 0.08948},
		{405.72, 0.07766}, {415.59, 0.07001}, {428.32, 0.06149}, {443.5, 0.05377}, {453.92, 0.04993},
		{466.87, 0.04648}, {479.93, 0.039425}, {492.34, 0.036272}, {509.79, 0.032158}, {531, 0.027814},
		{544.03, 0.025394}, {558.1, 0.022934}, {571.21, 0.021002}, {592.83, 0.018793}, {611.04, 0.016645},
		{622.45, 0.014978}, {637.06, 0.013653}, {655.06, 0.012446}, {675.13, 0.011292}, {687.79, 0.010294},
		{703.14, 0.009961}, {718.81, 0.009}, {744.28, 0.008128}, {760, 0.007307}, {783.28, 0.006448},
		{809.13, 0.005824}, {832.02, 0.005235}, {853.5, 0.004728}, {873.6, 0.0042902}, {883.8, 0.004115},
	},
	50: {
		{72.657, 3567.5}, {73.727, 3249.6}, {74.813, 2841.5}, {77.713, 2455.9}, {79.786, 2037.6},
		{82.636, 1730.5}, {84.593, 1419.1}, {85.84, 1323.2}, {87.61, 1191.3}, {89.95, 1017.7},
		{92.35, 869.3}, {94.54, 747}, {96.49, 638.1}, {98.78, 564.5}, {100.82, 514.2},
		{103.51, 431.65}, {105.96, 375.25}, {108.79, 316.84}, {110.71, 293.7}, {114, 238.06},
		{116.7, 213.08}, {118.77, 183.09}, {121.58, 167.75}, {123.73, 143.3}, {125.19, 128.26},
		{127.78, 113.47}, {131.95, 98.07}, {135.87, 81.85}, {138.68, 69.51}, {141.55, 61.14},
		{144.9, 56.02}, {149.2, 47.02}, {152.73, 39.935}, {156.81, 35.124}, {159.12, 31.994},
		{162.89, 28.305}, {167.72, 24.606}, {173.21, 21.642}, {176.79, 18.705}, {182.57, 16.072},
		{185.8, 14.769}, {188.81, 13.61}, {191.88, 12.325}, {195.85, 11.129}, {201.07, 9.731},
		{205.23, 8.968}, {209.17, 8.193}, {214.75, 7.081}, {220.15, 6.338}, {226.03, 5.689},
		{230.03, 5.167}, {234.44, 4.666}, {240.35, 4.0325}, {249.3, 3.5261}, {254.08, 3.3263},
		{258.58, 2.8332}, {265.48, 2.5359}, {272.16, 2.2765}, {278.2, 2.0796}, {285.62, 1.9447},
		{289.83, 1.6906}, {296.25, 1.5132}, {302.82, 1.3743}, {309.54, 1.2555}, {321.07, 1.137},
		{327.23, 0.9942}, {335.47, 0.9029}, {340.41, 0.8346}, {350, 0.7298}, {360.92, 0.6647},
		{368.39, 0.5846}, {374.91, 0.5467}, {383.22, 0.4951}, {388.87, 0.4589}, {394.02, 0.42914},
		{405.72, 0.3978}, {412.9, 0.35919}, {425.16, 0.31684}, {436.5, 0.28113}, {446.18, 0.25607},
		{456.07, 0.23257}, {470.3, 0.20396}, {484.26, 0.18309}, {493.55, 0.16532}, {508.95, 0.14711},
		{518.72, 0.13597}, {533.33, 0.11414}, {549.97, 0.10519}, {565.46, 0.08986}, {583.1, 0.07949},
		{595.16, 0.07033}, {610.14, 0.0624}, {633.79, 0.05651}, {645.01, 0.05087}, {655.47, 0.04648},
		{665.13, 0.042211}, {679.88, 0.038674}, {695.98, 0.035227}, {714.55, 0.031715}, {726.13, 0.029399},
		{745.5, 0.027814}, {754.28, 0.025114}, {771.01, 0.022479}, {786.96, 0.020535}, {806.77, 0.018114},
		{824.66, 0.016791}, {838.04, 0.016261}, {851.6, 0.014344}, {876.9, 0.012653}, {900.3, 0.01126},
		{931.1, 0.010196}, {949, 0.009073}, {981.4, 0.007888}, {1009.1, 0.006999}, {1024, 0.006412},
		{1046.7, 0.005961}, {1063.6, 0.00543}, {1084.1, 0.00499}, {1104.9, 0.004545}, {1131, 0.0041884},
	},
	63: {
		{90.74, 3567.5}, {92.32, 3066.8}, {93.62, 2757}, {96.04, 2478.4}, {99.65, 2037.6},
		{102.25, 1703.3}, {104.66, 1421.8}, {107.86, 1248.9}, {109.43, 1163.8}, {112.99, 932.9},
		{114.31, 838.7}, {117.38, 729.8}, {119.46, 650.1}, {122.84, 560.6}, {125.14, 481.1},
		{128.9, 416.8}, {132, 359.39}, {134.17, 314.23}, {137.96, 273.47}, {139.9, 238.06},
		{143.84, 208.09}, {146.54, 180.27}, {149.98, 153.29}, {153.63, 139.18}, {156.38, 117.19},
		{160.43, 99.65}, {164.58, 87.94}, {168.7, 79.49}, {172, 66.61}, {176.45, 55.6},
		{183.1, 45.4}, {187.71, 40.051}, {192.16, 35.954}, {197.86, 31.439}, {204.03, 26.857},
		{208.25, 23.622}, {213.81, 21.642}, {219.51, 19.035}, {224.71, 17.138}, {230.37, 15.565},
		{236.86, 14.136}, {239.64, 12.952}, {246.4, 11.525}, {253.71, 10.078}, {258.96, 9.234},
		{266.25, 8.265}, {271.97, 7.526}, {277.03, 6.916}, {283.75, 6.309}, {291.7, 5.588},
		{296.58, 5.192}, {302.82, 4.832}, {311.13, 4.2732}, {317.5, 3.8553}, {328.21, 3.415},
		{336.17, 3.1613}, {344.42, 2.8917}, {349.43, 2.5827}, {358.56, 2.3216}, {365.9, 2.1178},
		{372.71, 1.9895}, {380.34, 1.8215}, {391.72, 1.6906}, {402.7, 1.4991}, {409.43, 1.3776},
		{421.68, 1.2429}, {429.52, 1.1421}, {445.53, 1.0117}, {458.14, 0.9128}, {473.59, 0.7909},
		{487.76, 0.6903}, {506.72, 0.6055}, {513.58, 0.5517}, {528.95, 0.5126}, {540.78, 0.4641},
		{554.91, 0.40663}, {564.19, 0.37642}, {576.32, 0.35399}, {590.79, 0.32258}, {598.46, 0.30193},
		{615.23, 0.26744}, {630.14, 0.24576}, {645.42, 0.23003}, {663.19, 0.21184}, {674.6, 0.18793},
		{692.23, 0.16769}, {706.41, 0.15353}, {727.54, 0.13801}, {754.28, 0.12678}, {768.89, 0.11358},
		{784.64, 0.10399}, {800.7, 0.09556}, {815.6, 0.08879}, {835.37, 0.07982}, {857.9, 0.07412},
		{878, 0.06715}, {899.3, 0.05926}, {921.1, 0.05506}, {941.7, 0.0506}, {957.4, 0.04667},
		{975.7, 0.04436}, {993.3, 0.04029}, {1019.3, 0.036753}, {1042.1, 0.033526}, {1065.4, 0.031036},
		{1089.2, 0.028104}, {1109.7, 0.025933}, {1140.6, 0.023559}, {1179, 0.021099}, {1201, 0.019318},
		{1239.2, 0.017111}, {1262.1, 0.01552}, {1300, 0.01398}, {1326.6, 0.012941}, {1361.3, 0.01159},
		{1399.4, 0.010304}, {1452.4, 0.009288}, {1473.5, 0.00848}, {1506.5, 0.007651}, {1537.3, 0.007109},
		{1574.6, 0.006581}, {1609.8, 0.006025}, {1630.7, 0.00566}, {1651.9, 0.00543}, {1682.6, 0.005014},
		{1707.6, 0.004745}, {1749, 0.0042965}, {1765.1, 0.0040661},
	},
}

// Neozed gG D01/D02/D03, digitised manufacturer curves (A, s).
var neozedCurves = map[float64]Curve{
	2: {
		{4.0535, 3086.3}, {4.1602, 1612.8}, {4.2145, 1173.4}, {4.2696, 721.2}, {4.3536, 508},
		{4.3819, 376.87}, {4.4105, 256.98}, {4.5559, 196.94}, {4.5856, 149.95}, {4.6909, 100.92},
		{4.8143, 60.05}, {4.8773, 36.668}, {4.9893, 23.28}, {5.1205, 15.467}, {5.3933, 7.624},
		{5.5352, 4.685}, {5.5894, 3.387}, {5.755, 2.4484}, {5.8491, 1.6479}, {6.221, 0.8229},
		{6.7246, 0.4413}, {6.9238, 0.3009}, {7.269, 0.23666}, {8.411, 0.09789}, {8.888, 0.078},
		{9.86, 0.05824}, {10.589, 0.04732}, {11.596, 0.037457}, {12.781, 0.02815}, {14.086, 0.022284},
		{15.678, 0.017077}, {17.336, 0.013606}, {18.8, 0.010911}, {21.128, 0.00875}, {23.667, 0.006793},
		{26.255, 0.005483}, {29.506, 0.004257}, {33.16, 0.0034358}, {37.387, 0.0027022}, {41.881, 0.0022096},
		{46.612, 0.0017378}, {52.214, 0.001421}, {59.254, 0.0010889},
	},
	4: {
		{8.061, 3422.8}, {8.381, 1788.6}, {8.453, 1231.3}, {8.699, 818.1}, {8.842, 561.6},
		{9.06, 386.63}, {9.419, 202.03}, {9.635, 117.8}, {9.834, 76.37}, {10.161, 46.76},
		{10.45, 29.586}, {10.865, 15.46}, {11.117, 10.216}, {11.44, 6.843}, {11.594, 4.807},
		{12.054, 2.5118}, {12.263, 1.6767}, {12.532, 1.3125}, {12.568, 0.908}, {13.253, 0.6601},
		{13.806, 0.4458}, {15.424, 0.20244}, {16.06, 0.16171}, {17.561, 0.11142}, {18.154, 0.08974},
		{19.781, 0.06741}, {21.378, 0.05188}, {22.36, 0.04406}, {23.975, 0.036482}, {26.33, 0.027192},
		{28.749, 0.021704}, {31.516, 0.016511}, {34.924, 0.012913}, {37.57, 0.01053}, {41.103, 0.008039},
		{46.085, 0.006606}, {51.883, 0.005002}, {55.842, 0.004111}, {61.006, 0.0036177}, {64.956, 0.0030874},
		{69.913, 0.0026866}, {76.057, 0.0022669}, {80, 0.0019689}, {86.46, 0.0016994}, {94.98, 0.0014667},
		{103.49, 0.0012252}, {110.03, 0.0010926}, {111.85, 0.0010403},
	},
	6: {
		{11.441, 3084.6}, {11.531, 2182.2}, {11.742, 1611.9}, {11.963, 1116}, {12.209, 799.7},
		{12.31, 575.5}, {12.859, 417.9}, {12.877, 319.39}, {13.37, 224.1}, {13.524, 160.7},
		{14.082, 117.1}, {14.616, 82.18}, {15.351, 51.99}, {16.033, 35.474}, {16.388, 26.157},
		{17.331, 19.024}, {17.93, 14.282}, {18.734, 10.202}, {19.616, 7.069}, {20.783, 5.194},
		{21.994, 3.4988}, {23.056, 2.7856}, {23.77, 2.0901}, {24.863, 1.6898}, {25.577, 1.4939},
		{26.435, 1.1135}, {27.648, 0.9122}, {29.278, 0.6544}, {31.072, 0.502}, {32.295, 0.4039},
		{34.92, 0.27631}, {36.656, 0.23163}, {43.519, 0.09655}, {45.149, 0.07555}, {49.396, 0.05229},
		{52.518, 0.04025}, {56.067, 0.030477}, {61.001, 0.023453}, {65.484, 0.018058}, {72.207, 0.013247},
		{79.35, 0.00962}, {87.17, 0.007589}, {97.31, 0.005623}, {106.49, 0.004423}, {119.75, 0.0034334},
		{125.4, 0.0028208}, {137.19, 0.0023951}, {147.38, 0.0020963}, {161.55, 0.001685}, {176.02, 0.0014783},
		{186.14, 0.0013136}, {200.61, 0.0011194}, {205.58, 0.0010658},
	},
	10: {
		{17.328, 3421.3}, {18.251, 1787.8}, {19.099, 1029.7}, {19.793, 706.7}, {20.512, 501},
		{20.915, 366.9}, {21.886, 268.69}, {22.681, 185.6}, {23.353, 140.4}, {23.89, 110.43},
		{24.838, 84.63}, {25.824, 60.38}, {27.023, 42.81}, {28.005, 32.806}, {30.667, 17.593},
		{32.196, 12.392}, {34.021, 9.435}, {35.328, 7.302}, {37.256, 5.329}, {38.809, 3.987},
		{41.33, 2.858}, {42.984, 2.249}, {45.85, 1.573}, {48.59, 1.1787}, {51.529, 0.9119},
		{54.479, 0.7099}, {59.432, 0.5151}, {61.584, 0.4346}, {74.319, 0.195}, {77.1, 0.16157},
		{81.64, 0.11841}, {86.8, 0.08331}, {91.91, 0.06206}, {95.36, 0.04977}, {102.48, 0.036453},
		{105.18, 0.030717}, {110.02, 0.024631}, {116.68, 0.020063}, {121.85, 0.016364}, {127.98, 0.013782},
		{136.33, 0.011332}, {142.9, 0.009617}, {156.34, 0.006991}, {171.05, 0.005381}, {184.86, 0.004176},
		{203.82, 0.0033444}, {215.03, 0.002797}, {233.34, 0.0022798}, {250.83, 0.002042}, {268.11, 0.0016983},
		{288.57, 0.001442}, {312.72, 0.0012468}, {332.93, 0.0010655},
	},
	16: {
		{24.594, 3420.7}, {25.219, 2495.2}, {26.243, 1787.5}, {26.62, 1213.1}, {28.002, 841.9},
		{29.055, 586.7}, {29.879, 451.5}, {30.749, 312.97}, {31.881, 235.93}, {32.878, 161.86},
		{34.462, 126.53}, {35.426, 92.31}, {36.632, 66.04}, {38.271, 45.81}, {40.268, 32.8},
		{41.664, 24.69}, {43.528, 17.59}, {45.126, 12.769}, {46.782, 9.325}, {49.001, 6.846},
		{51.525, 5.192}, {53.897, 3.7276}, {57.16, 2.7843}, {58.979, 2.2499}, {61.935, 1.7661},
		{64.24, 1.5324}, {65.713, 1.27}, {69.007, 1.055}, {72.28, 0.863}, {76.098, 0.688},
		{79.71, 0.5834}, {84.79, 0.4699}, {88.81, 0.4131}, {91.18, 0.3972}, {96.43, 0.30956},
		{106.54, 0.22436}, {135.8, 0.09762}, {144.45, 0.07702}, {151.3, 0.06565}, {158.48, 0.05539},
		{165.57, 0.04673}, {172.97, 0.038027}, {182.58, 0.031427}, {192.23, 0.026514}, {203.81, 0.022251},
		{213.62, 0.018486}, {224.33, 0.014966}, {235.07, 0.012569}, {242.97, 0.0111}, {252.53, 0.009413},
		{265.87, 0.008149}, {278.48, 0.007127}, {291.68, 0.006396}, {308.67, 0.00562}, {321.66, 0.004995},
		{340.4, 0.004279}, {359.3, 0.0038604}, {379.87, 0.0034312}, {390.15, 0.0031092}, {418.23, 0.0026777},
		{447.17, 0.002342}, {473.59, 0.002095}, {511.93, 0.0017927}, {549.42, 0.0015508}, {593.52, 0.0013356},
		{646.56, 0.0011529}, {671.57, 0.0010646},
	},
	20: {
		{30.661, 3420.3}, {31.891, 2547.6}, {32.717, 1834.3}, {34.046, 1261}, {35.827, 778.7},
		{36.946, 584.6}, {38.728, 417.6}, {39.604, 296.55}, {41.324, 218.22}, {42.453, 156.71},
		{44.669, 117.03}, {46.069, 84.86}, {48.583, 56.85}, {51.522, 35.451}, {53.371, 26.571},
		{56.42, 19.012}, {58.153, 13.927}, {61.784, 10.196}, {64.408, 7.542}, {68.541, 5.328},
		{72.216, 4.018}, {74.008, 3.3839}, {77.03, 2.9322}, {81.63, 2.0381}, {87.51, 1.4695},
		{93.04, 1.1592}, {98.56, 0.9115}, {103.04, 0.7577}, {108.67, 0.6075}, {113.68, 0.5149},
		{119.37, 0.4239}, {124.89, 0.35797}, {131.54, 0.28337}, {137.65, 0.24407}, {145.45, 0.20219},
		{152.54, 0.16963}, {162.18, 0.13602}, {169.95, 0.11421}, {181.1, 0.09037}, {189.42, 0.07246},
		{202.22, 0.05716}, {217.66, 0.04509}, {232.03, 0.035503}, {245.04, 0.028995}, {259.46, 0.023441},
		{271.11, 0.020054}, {288.54, 0.015574}, {316.78, 0.011327}, {335.64, 0.009379}, {356.85, 0.007771},
		{379.41, 0.006491}, {405.32, 0.005619}, {423.66, 0.004916}, {461.62, 0.00414}, {488.79, 0.0036618},
		{511.91, 0.0032571}, {541.36, 0.0027956}, {597.13, 0.0023352}, {638.22, 0.0019887}, {686.12, 0.0017254},
		{744.55, 0.0014892}, {795.7, 0.0013126}, {841.6, 0.0011652}, {873.2, 0.0010737},
	},
	25: {
		{39.23, 3509.8}, {40.655, 2724.9}, {41.454, 2257.3}, {42.406, 1882.2}, {44.089, 1325.7},
		{45.395, 1049.5}, {46.438, 863.8}, {48.281, 596.7}, {50.197, 463.2}, {51.019, 343.68},
		{53.562, 242.07}, {55.508, 174.98}, {57.898, 129.82}, {59.614, 100.13}, {61.98, 78.25},
		{63.609, 62.35}, {66.134, 45.36}, {68.536, 34.537}, {70.338, 28.06}, {72.421, 22.213},
		{75.052, 18.522}, {77.53, 14.473}, {80.34, 10.807}, {84.62, 7.914}, {87.41, 6.347},
		{91.18, 5.19}, {93.57, 4.558}, {96.66, 3.562}, {100.17, 3.1487}, {102.47, 2.8566},
		{106.19, 2.4604}, {111.48, 2.012}, {115.53, 1.7442}, {119.73, 1.6135}, {123.27, 1.3541},
		{128.58, 1.1513}, {134.12, 1.0243}, {138.09, 0.9114}, {141.72, 0.8162}, {147.82, 0.7075},
		{154.69, 0.5938}, {161.35, 0.5148}, {165.06, 0.464}, {171.05, 0.3971}, {177.84, 0.33759},
		{186.1, 0.29077}, {193.48, 0.24562}, {202.47, 0.21853}, {207.46, 0.1846}, {213.6, 0.16531},
		{218.51, 0.14949}, {224.98, 0.13387}, {231.64, 0.11834}, {239.28, 0.10632}, {245.17, 0.09835},
		{249.99, 0.09098}, {258.23, 0.07939}, {270.22, 0.06577}, {287.39, 0.05413}, {298.8, 0.04572},
		{311.67, 0.038874}, {320.9, 0.035497}, {333.63, 0.030376}, {350.26, 0.025659}, {361.81, 0.022829},
		{374.95, 0.02005}, {391.1, 0.017047}, {407.94, 0.014778}, {422.75, 0.013063}, {443.83, 0.011623},
		{451.08, 0.010011}, {472.04, 0.008735}, {492.36, 0.007874}, {506.94, 0.007005}, {527.06, 0.006355},
		{553.33, 0.005618}, {569.72, 0.004998}, {590.41, 0.004333}, {621.86, 0.003957}, {648.63, 0.0035896},
		{663.53, 0.0033423}, {696.6, 0.0029544}, {724.25, 0.0026286}, {755.43, 0.0023388}, {788, 0.002108},
		{816.6, 0.0019884}, {851.7, 0.0017691}, {891.3, 0.001574}, {929.7, 0.0014655}, {972.9, 0.0012955},
		{1024.7, 0.0011753}, {1065.3, 0.0010802}, {1086.3, 0.0010389},
	},
	35: {
		{52.867, 3509.2}, {54.433, 2926}, {55.863, 2424}, {57.893, 1881.9}, {60.386, 1387.1},
		{61.973, 1141.7}, {64.224, 863.7}, {66.774, 632.5}, {68.307, 537.7}, {70.33, 463.2},
		{72.414, 352.65}, {73.598, 290.25}, {77.02, 248.38}, {79.56, 177.23}, {83.52, 136.71},
		{85.44, 113.25}, {89.99, 82.94}, {93.26, 65.23}, {96.02, 51.64}, {98.87, 43.62},
		{102.46, 34.53}, {105.15, 27.513}, {110.04, 23.24}, {112.56, 20.279}, {115.15, 19.004},
		{118.17, 15.744}, {122.86, 13.127}, {126.91, 11.089}, {129.41, 10.192}, {134.11, 8.721},
		{136.74, 7.272}, {142.17, 6.064}, {145.43, 5.325}, {149.74, 4.44}, {154.68, 3.7753},
		{158.74, 3.2729}, {163.45, 2.931}, {167.74, 2.5409}, {171.59, 2.2461}, {177.83, 1.9346},
		{180.73, 1.7897}, {186.09, 1.6131}, {189.74, 1.4352}, {197.27, 1.2524}, {203.78, 1.107},
		{214.63, 0.9112}, {220.27, 0.832}, {232, 0.6672}, {241.21, 0.586}, {250.78, 0.5147},
		{257.37, 0.4669}, {266.72, 0.4022}, {272.62, 0.37444}, {280.7, 0.33641}, {287.84, 0.30372},
		{296.85, 0.27331}, {305.89, 0.24756}, {316.48, 0.22422}, {325.07, 0.2021}, {332.53, 0.18575},
		{344.61, 0.1642}, {358.28, 0.14143}, {371.29, 0.12502}, {379.82, 0.11416}, {392.34, 0.09833},
		{407.91, 0.0858}, {424.1, 0.07294}, {442.36, 0.06365}, {461.41, 0.05239}, {478.17, 0.04571},
		{498.76, 0.037868}, {511.87, 0.032829}, {528.55, 0.028481}, {553.62, 0.023058}, {572.46, 0.020376},
		{590.38, 0.018543}, {613.66, 0.015587}, {639.46, 0.013355}, {662.92, 0.011621}, {689.83, 0.010474},
		{721.7, 0.008708}, {759.82, 0.007385}, {795.9, 0.006295}, {840.1, 0.005338}, {884.4, 0.004645},
		{921.6, 0.004083}, {965.3, 0.0035531}, {1018, 0.0031724}, {1061.8, 0.0028033}, {1117.9, 0.0024519},
		{1170.9, 0.0021667}, {1252.8, 0.001937}, {1284.6, 0.0017814}, {1369.9, 0.00155}, {1438.6, 0.0014274},
		{1526.3, 0.0012942}, {1582.3, 0.0012138}, {1648.9, 0.0011496}, {1696.2, 0.0010696},
	},
	50: {
		{74.141, 3485.5}, {77.66, 2506.6}, {80.51, 1907.7}, {82.18, 1466.9}, {85.86, 1116.4},
		{88.55, 871.8}, {91.16, 701.6}, {95.91, 515.5}, {101.13, 376.23}, {104.95, 289.5},
		{109.37, 226.08}, {112.19, 201.76}, {116.94, 152.83}, {120.92, 126.31}, {124.46, 111.05},
		{129.95, 88.52}, {135.07, 72.41}, {140.03, 61.4}, {144.79, 51.54}, {150.49, 40.04},
		{155.17, 35.43}, {160.91, 29.093}, {165.1, 25.055}, {171.16, 21.578}, {176.66, 19.5},
		{180.67, 16.938}, {187.3, 14.29}, {193.67, 12.628}, {201.13, 10.732}, {208.15, 8.942},
		{216.9, 7.466}, {224.28, 6.463}, {231.98, 5.464}, {237.35, 4.819}, {244.16, 4.369},
		{251.82, 3.8612}, {259.72, 3.4121}, {267.57, 3.0072}, {276.28, 2.5308}, {282.75, 2.2249},
		{293.88, 1.9261}, {304.63, 1.6986}, {312.61, 1.5119}, {325.75, 1.2821}, {335.11, 1.1213},
		{344.73, 0.9909}, {355.94, 0.8876}, {370.5, 0.7659}, {386.08, 0.6362}, {397.16, 0.5479},
		{405.25, 0.4885}, {421.39, 0.4257}, {437.98, 0.37233}, {452.88, 0.32066}, {467.4, 0.27592},
		{474.36, 0.25041}, {495.58, 0.20695}, {511.13, 0.18101}, {528.52, 0.15508}, {550.74, 0.12751},
		{578.35, 0.09958}, {604.22, 0.08187}, {628, 0.06979}, {651.05, 0.05827}, {669.75, 0.04916},
		{694.33, 0.04169}, {717.16, 0.035481}, {734.78, 0.030763}, {759.79, 0.025688}, {791.7, 0.022467},
		{816.5, 0.019528}, {837.9, 0.016408}, {868.6, 0.013491}, {900.5, 0.011861}, {929.6, 0.010748},
		{957.9, 0.00912}, {1000.7, 0.007774}, {1034.8, 0.006977}, {1070, 0.006326}, {1114.7, 0.005616},
		{1158.9, 0.004864}, {1207.6, 0.004211}, {1274.6, 0.003702}, {1354.2, 0.003341}, {1409.2, 0.0030437},
		{1476.1, 0.0027457}, {1554, 0.0024014}, {1623.6, 0.0022114}, {1688.3, 0.0020935}, {1749.4, 0.0019143},
		{1841.8, 0.0017358}, {1919.2, 0.0015984}, {2020.6, 0.0014643}, {2121.9, 0.0013485}, {2211.1, 0.0012741},
		{2304, 0.0011673}, {2432, 0.001086}, {2489, 0.0010422},
	},
	63: {
		{86.52, 3431.8}, {89.24, 2895.3}, {91.15, 2439.1}, {93.47, 1947.2}, {95.41, 1634.4},
		{99.82, 1308.1}, {102.81, 1065.7}, {106.51, 841.3}, {110.49, 680.8}, {113.08, 580.3},
		{116.03, 487.1}, {118.16, 451.2}, {121.22, 350.26}, {126.32, 289.47}, {129.39, 241.95},
		{133.68, 196.7}, {138.59, 165.1}, {143.54, 133.16}, {147.04, 113.93}, {154.01, 91.76},
		{158.44, 75.06}, {165.52, 60.77}, {170.72, 51.53}, {177.44, 42.59}, {183.95, 34.838},
		{191.19, 29.696}, {198.21, 24.796}, {206.41, 20.537}, {213.02, 17.024}, {221.98, 14.661},
		{229.53, 12.369}, {235.01, 11.303}, {243.53, 9.56}, {251.17, 8.233}, {261.06, 6.804},
		{270.64, 6.234}, {278.18, 5.463}, {287.88, 4.672}, {295.39, 4.171}, {308.6, 3.5553},
		{320.84, 3.086}, {331.67, 2.6919}, {344.72, 2.3303}, {358.29, 1.9863}, {368.58, 1.7735},
		{370.06, 1.6984}, {377.22, 1.6081}, {396.13, 1.3567}, {410.67, 1.1387}, {427.93, 0.9557},
		{442.5, 0.8316}, {461.1, 0.698}, {478.02, 0.5919}, {500.69, 0.5098}, {524.43, 0.4064},
		{536.04, 0.37038}, {552.14, 0.32311}, {566.54, 0.28701}, {585.06, 0.25103}, {600.32, 0.22528},
		{621.77, 0.19686}, {629.6, 0.18667}, {656.07, 0.16411}, {680.14, 0.14133}, {703.29, 0.12298},
		{717.13, 0.11119}, {749.07, 0.08889}, {775.6, 0.07656}, {810.3, 0.06426}, {843.2, 0.05365},
		{873.1, 0.04633}, {891.2, 0.04073}, {921.5, 0.034718}, {941.9, 0.031158}, {980.3, 0.025355},
		{1017.9, 0.022232}, {1046.8, 0.019497}, {1075.5, 0.016965}, {1109.2, 0.014686}, {1146.9, 0.01318},
		{1174.1, 0.012236}, {1201.3, 0.010453}, {1247, 0.00919}, {1284.5, 0.008484}, {1333.3, 0.007345},
		{1385.8, 0.006694}, {1433, 0.005992}, {1482.9, 0.005471}, {1544, 0.00474}, {1596.6, 0.004309},
		{1659.4, 0.0038871}, {1731.4, 0.003435}, {1801.4, 0.0032548}, {1851.3, 0.0029054}, {1911.8, 0.0026344},
		{2024.5, 0.0023835}, {2086.6, 0.0021828}, {2177.2, 0.0019589}, {2292.2, 0.0017671}, {2385.5, 0.0016315},
		{2523.9, 0.0014553}, {2607, 0.0013379}, {2716.6, 0.0012577}, {2805.4, 0.0011884}, {2893.4, 0.0011057},
		{2961.2, 0.001061},
	},
	80: {
		{121.25, 3417.7}, {125.08, 2545.7}, {128.18, 2135.2}, {131.07, 1832.9}, {133.53, 1361.8},
		{137.68, 1114.6}, {141.1, 950.3}, {143.53, 819.6}, {147.59, 641.8}, {150.02, 560.8},
		{154.37, 480.1}, {157.18, 439.5}, {160.49, 344.72}, {167.52, 274.17}, {172.12, 235.71},
		{175.22, 200.12}, {180.68, 169.92}, {186.68, 143.11}, {190.95, 126.41}, {197.27, 102.34},
		{203.83, 82.74}, {212.33, 67.72}, {222.09, 54.75}, {230.41, 45.92}, {236.61, 38.991},
		{241.17, 36.353}, {251.05, 29.166}, {258.87, 25.589}, {265.29, 22.177}, {274.58, 20.008},
		{283.21, 16.253}, {292.03, 14.495}, {302.35, 12.665}, {312.61, 11.012}, {321.46, 9.282},
		{336.93, 7.504}, {346.7, 6.72}, {353.86, 5.968}, {365.27, 5.463}, {378.54, 4.747},
		{391.12, 4.131}, {399.19, 3.8064}, {409.94, 3.2854}, {421.3, 3.0065}, {435.85, 2.5917},
		{448.5, 2.2738}, {464.35, 1.9787}, {476.84, 1.7937}, {485.92, 1.6982}, {500.81, 1.4502},
		{517.45, 1.2517}, {532.46, 1.1208}, {546.8, 0.9955}, {560.45, 0.9107}, {576.63, 0.7757},
		{595.79, 0.6723}, {623.18, 0.5732}, {646.41, 0.5012}, {666.64, 0.4235}, {683.19, 0.3871},
		{707.33, 0.32869}, {735.95, 0.28311}, {755.13, 0.24287}, {788.2, 0.21395}, {802.9, 0.19715},
		{824.5, 0.17227}, {848.4, 0.15363}, {876.6, 0.13314}, {903.9, 0.11398}, {924.4, 0.09919},
		{963, 0.08491}, {999, 0.06893}, {1038.6, 0.05877}, {1077.5, 0.0499}, {1108.7, 0.04203},
		{1144, 0.036405}, {1171.6, 0.031438}, {1205.6, 0.027923}, {1230.5, 0.0247}, {1274, 0.021232},
		{1302.4, 0.020036}, {1338, 0.017095}, {1393.8, 0.014575}, {1431.4, 0.012998}, {1502.2, 0.011317},
		{1534.3, 0.01017}, {1585.3, 0.009033}, {1661.6, 0.007925}, {1723.8, 0.007039}, {1781.1, 0.006459},
		{1832.8, 0.005856}, {1905.3, 0.005265}, {2024.4, 0.004561}, {2067.5, 0.004187}, {2140.6, 0.0038586},
		{2220.8, 0.0034979}, {2322.9, 0.0031194}, {2395.2, 0.0029338}, {2491.4, 0.0027849}, {2546.5, 0.0025116},
		{2652.7, 0.0023049}, {2763.4, 0.0021152}, {2914.1, 0.0019096}, {3106, 0.0017003}, {3201.3, 0.0015565},
		{3355.3, 0.0014342}, {3538.3, 0.0012948}, {3746.6, 0.0011786}, {3922.9, 0.0010935},
	},
	100: {
		{153.14, 3599.4}, {156.27, 2961}, {161.46, 2483.6}, {165.54, 1930.3}, {170.97, 1489.8},
		{175.93, 1199.5}, {179.93, 993.8}, {183.65, 885.9}, {190.52, 685.1}, {194.46, 567.6},
		{201.1, 475.1}, {206.39, 396.1}, {212.31, 311.18}, {220.27, 249.52}, {225.27, 218.03},
		{228.96, 212.43}, {234.67, 169.21}, {244.96, 134.03}, {250.73, 113.92}, {256.22, 100.67},
		{263.12, 83.07}, {274.09, 69.39}, {283.2, 57.73}, {291.42, 49.83}, {304.19, 40.95},
		{312.6, 34.509}, {322.76, 28.456}, {331.45, 25.171}, {343.17, 21.46}, {351.31, 18.993},
		{359.68, 16.251}, {370.87, 13.969}, {382.41, 12.156}, {390.31, 11.156}, {399.98, 10.453},
		{409.92, 8.765}, {427.02, 7.292}, {442.11, 6.423}, {456.8, 5.522}, {473.91, 4.65},
		{492.67, 3.997}, {511.78, 3.4228}, {525.96, 2.8703}, {544.55, 2.539}, {559.2, 2.2551},
		{573.08, 2.0359}, {590.28, 1.9334}, {605.59, 1.6325}, {628.27, 1.4382}, {654.47, 1.2566},
		{681.77, 1.0583}, {702.99, 0.94}, {717.08, 0.8872}, {744.37, 0.7507}, {778.6, 0.6559},
		{801.2, 0.5755}, {827.1, 0.5011}, {855.3, 0.4322}, {883.7, 0.37612}, {913.1, 0.32864},
		{964.9, 0.26461}, {1001, 0.22468}, {1031.1, 0.1968}, {1066.5, 0.17224}, {1106.4, 0.14506},
		{1143.2, 0.12779}, {1189.3, 0.10831}, {1227.9, 0.09289}, {1255.9, 0.08184}, {1297.6, 0.07151},
		{1346.2, 0.06351}, {1399.5, 0.05349}, {1454.9, 0.04579}, {1494, 0.03968}, {1521.7, 0.036399},
		{1582, 0.031691}, {1624.6, 0.027691}, {1692.3, 0.023609}, {1755.1, 0.02056}, {1788.3, 0.019087},
		{1855.3, 0.016141}, {1940.6, 0.013705}, {2001, 0.012173}, {2088.7, 0.01055}, {2166.9, 0.009294},
		{2257.3, 0.008021}, {2346.6, 0.007009}, {2434.6, 0.006149}, {2523.8, 0.005613}, {2620.4, 0.004891},
		{2735.2, 0.004256}, {2861, 0.0038422}, {2968.1, 0.0034547}, {3026.4, 0.0032539}, {3110.9, 0.0029334},
		{3214.3, 0.0026701}, {3334.7, 0.0024604}, {3459.6, 0.0022032}, {3560, 0.0020637}, {3676.5, 0.0019868},
		{3761.9, 0.0018179}, {3894.8, 0.0016615}, {3975.2, 0.0015949},
	},
}

// gGShape is the normalised gG characteristic as a multiple of rated
// current; knife fuses are scaled from it.
var gGShape = Curve{
	{3, 1.5}, {3.1346, 1.33}, {3.27, 1.17}, {3.414, 1.04}, {3.565, 0.93},
	{3.723, 0.835}, {3.888, 0.75}, {4.059, 0.67}, {4.238, 0.6}, {4.424, 0.54},
	{4.617, 0.49}, {4.818, 0.445}, {5.027, 0.405}, {5.244, 0.37}, {5.47, 0.335},
	{5.704, 0.305}, {5.947, 0.28}, {6.2, 0.255}, {6.462, 0.235}, {6.734, 0.215},
	{7.017, 0.2}, {7.31, 0.185}, {7.614, 0.17}, {7.93, 0.158}, {8.258, 0.146},
	{8.598, 0.135}, {8.951, 0.125}, {9.318, 0.116}, {9.698, 0.108}, {10.093, 0.1},
	{10.504, 0.094}, {10.93, 0.088}, {11.372, 0.082}, {11.831, 0.077}, {12.307, 0.072},
	{12.801, 0.068}, {13.314, 0.064}, {13.846, 0.06}, {14.398, 0.057}, {14.97, 0.054},
	{15.563, 0.051}, {16.178, 0.048}, {16.815, 0.0455}, {17.475, 0.043}, {18.159, 0.0405},
	{18.868, 0.0385}, {19.602, 0.0365}, {20.363, 0.0345}, {21.151, 0.033}, {21.967, 0.0315},
	{22.812, 0.03}, {23.687, 0.0285}, {24.592, 0.027}, {25.529, 0.026}, {26.498, 0.025},
	{27.501, 0.024}, {28.539, 0.023}, {29.612, 0.022}, {30.722, 0.021}, {31.87, 0.02},
}
